package credential

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearerSecurity = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-list",
		Method:      http.MethodGet,
		Path:        "/api/credentials",
		Summary:     "List active credentials without secrets",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-create",
		Method:      http.MethodPost,
		Path:        "/api/credentials",
		Summary:     "Store a new credential",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) revealOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-reveal",
		Method:      http.MethodGet,
		Path:        "/api/credentials/{id}/reveal",
		Summary:     "Decrypt and return the secret of one credential",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-update",
		Method:      http.MethodPut,
		Path:        "/api/credentials/{id}",
		Summary:     "Update fields of an active credential",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-delete",
		Method:      http.MethodDelete,
		Path:        "/api/credentials/{id}",
		Summary:     "Move a credential to trash",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) listTrashOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-trash",
		Method:      http.MethodGet,
		Path:        "/api/credentials/trash",
		Summary:     "List credentials currently in trash",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) restoreOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-restore",
		Method:      http.MethodPut,
		Path:        "/api/credentials/{id}/restore",
		Summary:     "Restore a credential from trash",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) purgeOp() huma.Operation {
	return huma.Operation{
		OperationID: "credentials-purge",
		Method:      http.MethodDelete,
		Path:        "/api/credentials/{id}/permanent",
		Summary:     "Permanently delete a credential from trash",
		Tags:        []string{"credentials"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}
