package stepup

import (
	"context"
	"testing"

	"passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/domain/stepup"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Settings(ctx context.Context, ownerID int) (stepup.Settings, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(stepup.Settings), args.Error(1)
}

func (m *MockService) Enable(ctx context.Context, ownerID int, secret string, rememberMinutes int) error {
	args := m.Called(ctx, ownerID, secret, rememberMinutes)
	return args.Error(0)
}

func (m *MockService) Disable(ctx context.Context, ownerID int) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockService) Verify(ctx context.Context, ownerID int, candidate string) (bool, error) {
	args := m.Called(ctx, ownerID, candidate)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) UpdateRememberMinutes(ctx context.Context, ownerID, minutes int) error {
	args := m.Called(ctx, ownerID, minutes)
	return args.Error(0)
}

func authedCtx(userID int) context.Context {
	return context.WithValue(context.Background(), auth.UserIDKey, userID)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestHandler_Settings_Default(t *testing.T) {
	svc := new(MockService)
	svc.On("Settings", mock.Anything, 7).Return(stepup.DefaultSettings(), nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.settings(authedCtx(7), &struct{}{})

	require.NoError(t, err)
	assert.False(t, out.Body.Enabled)
	assert.Equal(t, stepup.DefaultRememberMinutes, out.Body.RememberMinutes)
}

func TestHandler_Enable(t *testing.T) {
	svc := new(MockService)
	svc.On("Enable", mock.Anything, 7, "mypass2", 15).Return(nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.enable(authedCtx(7), &enableInput{
		Body: EnableRequest{Secret: "mypass2", RememberMinutes: 15},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
	svc.AssertExpectations(t)
}

func TestHandler_Verify(t *testing.T) {
	svc := new(MockService)
	svc.On("Verify", mock.Anything, 7, "mypass2").Return(true, nil)
	svc.On("Settings", mock.Anything, 7).Return(stepup.Settings{Enabled: true, RememberMinutes: 30}, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.verify(authedCtx(7), &verifyInput{Body: VerifyRequest{Secret: "mypass2"}})

	require.NoError(t, err)
	assert.True(t, out.Body.Valid)
	assert.Equal(t, 30, out.Body.RememberMinutes)
}

func TestHandler_Verify_WrongSecret(t *testing.T) {
	svc := new(MockService)
	svc.On("Verify", mock.Anything, 7, "nope").Return(false, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.verify(authedCtx(7), &verifyInput{Body: VerifyRequest{Secret: "nope"}})

	require.Error(t, err)
	assert.Equal(t, 401, statusOf(t, err))
}

func TestHandler_Verify_NotEnabled(t *testing.T) {
	svc := new(MockService)
	svc.On("Verify", mock.Anything, 7, "mypass2").Return(false, stepup.ErrNotEnabled)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.verify(authedCtx(7), &verifyInput{Body: VerifyRequest{Secret: "mypass2"}})

	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestHandler_Disable_NoConfig(t *testing.T) {
	svc := new(MockService)
	svc.On("Disable", mock.Anything, 7).Return(stepup.ErrNotFound)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.disable(authedCtx(7), &struct{}{})

	require.Error(t, err)
	assert.Equal(t, 404, statusOf(t, err))
}

func TestHandler_UpdateSettings_ReportsStoredState(t *testing.T) {
	svc := new(MockService)
	svc.On("UpdateRememberMinutes", mock.Anything, 7, 15).Return(nil)
	// The window is adjustable on a disabled gate; the reply must not
	// claim it is enabled.
	svc.On("Settings", mock.Anything, 7).Return(stepup.Settings{Enabled: false, RememberMinutes: 15}, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.updateSettings(authedCtx(7), &updateSettingsInput{
		Body: UpdateSettingsRequest{RememberMinutes: 15},
	})

	require.NoError(t, err)
	assert.False(t, out.Body.Enabled)
	assert.Equal(t, 15, out.Body.RememberMinutes)
}

func TestHandler_UpdateSettings_OutOfRange(t *testing.T) {
	svc := new(MockService)
	svc.On("UpdateRememberMinutes", mock.Anything, 7, 2000).Return(stepup.ErrInvalidInput)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.updateSettings(authedCtx(7), &updateSettingsInput{
		Body: UpdateSettingsRequest{RememberMinutes: 2000},
	})

	require.Error(t, err)
	assert.Equal(t, 422, statusOf(t, err))
}

func TestHandler_Unauthenticated(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

	_, err := h.settings(context.Background(), &struct{}{})

	require.Error(t, err)
	assert.Equal(t, 401, statusOf(t, err))
}
