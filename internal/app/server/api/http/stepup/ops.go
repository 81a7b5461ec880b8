package stepup

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearerSecurity = []map[string][]string{{"bearer": {}}}

func (h *Handler) settingsOp() huma.Operation {
	return huma.Operation{
		OperationID: "stepup-settings",
		Method:      http.MethodGet,
		Path:        "/api/stepup/settings",
		Summary:     "Get secondary password settings",
		Tags:        []string{"stepup"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateSettingsOp() huma.Operation {
	return huma.Operation{
		OperationID: "stepup-update-settings",
		Method:      http.MethodPut,
		Path:        "/api/stepup/settings",
		Summary:     "Change the verification validity window",
		Tags:        []string{"stepup"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) enableOp() huma.Operation {
	return huma.Operation{
		OperationID: "stepup-enable",
		Method:      http.MethodPost,
		Path:        "/api/stepup/enable",
		Summary:     "Enable the secondary password gate",
		Description: "Enabling always sets a fresh secret, replacing any previous one.",
		Tags:        []string{"stepup"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) disableOp() huma.Operation {
	return huma.Operation{
		OperationID: "stepup-disable",
		Method:      http.MethodPost,
		Path:        "/api/stepup/disable",
		Summary:     "Disable the secondary password gate",
		Tags:        []string{"stepup"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) verifyOp() huma.Operation {
	return huma.Operation{
		OperationID: "stepup-verify",
		Method:      http.MethodPost,
		Path:        "/api/stepup/verify",
		Summary:     "Verify the secondary password",
		Tags:        []string{"stepup"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}
