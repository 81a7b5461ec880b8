package stepup

import (
	"context"
	"errors"

	"passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/domain/stepup"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    stepup.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service stepup.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.settingsOp(), h.settings)
	huma.Register(api, h.updateSettingsOp(), h.updateSettings)
	huma.Register(api, h.enableOp(), h.enable)
	huma.Register(api, h.disableOp(), h.disable)
	huma.Register(api, h.verifyOp(), h.verify)
}

func (h *Handler) settings(ctx context.Context, _ *struct{}) (*settingsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	settings, err := h.service.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &settingsOutput{
		Body: SettingsResponse{
			Enabled:         settings.Enabled,
			RememberMinutes: settings.RememberMinutes,
			Status:          "Ok",
		},
	}, nil
}

func (h *Handler) updateSettings(ctx context.Context, input *updateSettingsInput) (*settingsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	err := h.service.UpdateRememberMinutes(ctx, userID, input.Body.RememberMinutes)
	if err != nil {
		return nil, mapError(err)
	}

	// The window can be changed while the gate is disabled; report the
	// stored state rather than assuming enabled.
	settings, err := h.service.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &settingsOutput{
		Body: SettingsResponse{
			Enabled:         settings.Enabled,
			RememberMinutes: settings.RememberMinutes,
			Status:          "Ok",
		},
	}, nil
}

func (h *Handler) enable(ctx context.Context, input *enableInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	minutes := input.Body.RememberMinutes
	if err := h.service.Enable(ctx, userID, input.Body.Secret, minutes); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) disable(ctx context.Context, _ *struct{}) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Disable(ctx, userID); err != nil {
		return nil, mapError(err)
	}

	return &statusOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) verify(ctx context.Context, input *verifyInput) (*verifyOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	valid, err := h.service.Verify(ctx, userID, input.Body.Secret)
	if err != nil {
		return nil, mapError(err)
	}

	if !valid {
		// Wrong secret is a 401, not a 422: the request was well formed,
		// the caller just failed the gate.
		return nil, huma.Error401Unauthorized("secondary password incorrect")
	}

	settings, err := h.service.Settings(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &verifyOutput{
		Body: VerifyResponse{
			Valid:           true,
			RememberMinutes: settings.RememberMinutes,
			Status:          "Ok",
		},
	}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, stepup.ErrNotFound), errors.Is(err, stepup.ErrNotEnabled):
		return huma.Error404NotFound("secondary password not enabled")
	case errors.Is(err, stepup.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return err
	}
}
