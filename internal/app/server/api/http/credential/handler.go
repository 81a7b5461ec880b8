package credential

import (
	"context"
	"errors"

	"passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/app/server/crypto"
	"passvault/internal/domain/credential"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    credential.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service credential.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.revealOp(), h.reveal)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
	huma.Register(api, h.listTrashOp(), h.listTrash)
	huma.Register(api, h.restoreOp(), h.restore)
	huma.Register(api, h.purgeOp(), h.purge)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	creds, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: ListResponse{Credentials: creds, Status: "Ok"},
	}, nil
}

func (h *Handler) listTrash(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	creds, err := h.service.ListTrash(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: ListResponse{Credentials: creds, Status: "Ok"},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	meta, err := h.service.Create(ctx, userID, credential.CreateRequest{
		ServiceName: input.Body.ServiceName,
		Username:    input.Body.Username,
		Secret:      input.Body.Secret,
		Category:    input.Body.Category,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &createOutput{
		Body: MetaResponse{Credential: meta, Status: "Ok"},
	}, nil
}

func (h *Handler) reveal(ctx context.Context, input *idInput) (*revealOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	secret, err := h.service.Reveal(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &revealOutput{
		Body: RevealResponse{Secret: secret, Status: "Ok"},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*metaOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	meta, err := h.service.Update(ctx, userID, input.ID, credential.UpdateRequest{
		ServiceName: input.Body.ServiceName,
		Username:    input.Body.Username,
		Category:    input.Body.Category,
		Secret:      input.Body.Secret,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &metaOutput{
		Body: MetaResponse{Credential: meta, Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.SoftDelete(ctx, userID, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) restore(ctx context.Context, input *idInput) (*metaOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	meta, err := h.service.Restore(ctx, userID, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &metaOutput{
		Body: MetaResponse{Credential: meta, Status: "Ok"},
	}, nil
}

func (h *Handler) purge(ctx context.Context, input *idInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Purge(ctx, userID, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

// mapError translates domain errors to HTTP statuses. Forbidden is folded
// into not-found on purpose: the API never confirms that someone else's
// credential exists.
func mapError(err error) error {
	switch {
	case errors.Is(err, credential.ErrNotFound), errors.Is(err, credential.ErrForbidden):
		return huma.Error404NotFound("credential not found")
	case errors.Is(err, credential.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.Is(err, credential.ErrInvalidState):
		return huma.Error409Conflict("credential is not in a state that allows this operation")
	case errors.Is(err, crypto.ErrDecrypt):
		return huma.Error500InternalServerError("internal error")
	default:
		return err
	}
}
