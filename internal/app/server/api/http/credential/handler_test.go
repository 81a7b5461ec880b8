package credential

import (
	"context"
	"errors"
	"testing"

	"passvault/internal/app/server/api/http/middleware/auth"
	"passvault/internal/domain/credential"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, ownerID int) ([]credential.Metadata, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]credential.Metadata), args.Error(1)
}

func (m *MockService) ListTrash(ctx context.Context, ownerID int) ([]credential.Metadata, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]credential.Metadata), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, ownerID int, req credential.CreateRequest) (credential.Metadata, error) {
	args := m.Called(ctx, ownerID, req)
	return args.Get(0).(credential.Metadata), args.Error(1)
}

func (m *MockService) Reveal(ctx context.Context, ownerID int, id uuid.UUID) (string, error) {
	args := m.Called(ctx, ownerID, id)
	return args.String(0), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerID int, id uuid.UUID, req credential.UpdateRequest) (credential.Metadata, error) {
	args := m.Called(ctx, ownerID, id, req)
	return args.Get(0).(credential.Metadata), args.Error(1)
}

func (m *MockService) SoftDelete(ctx context.Context, ownerID int, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockService) Restore(ctx context.Context, ownerID int, id uuid.UUID) (credential.Metadata, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Get(0).(credential.Metadata), args.Error(1)
}

func (m *MockService) Purge(ctx context.Context, ownerID int, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
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

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	metas := []credential.Metadata{
		{ID: uuid.New(), ServiceName: "github", Username: "alice"},
	}
	svc.On("List", mock.Anything, 7).Return(metas, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.list(authedCtx(7), &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, metas, out.Body.Credentials)
}

func TestHandler_List_Unauthenticated(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), huma.Middlewares{})

	_, err := h.list(context.Background(), &struct{}{})

	require.Error(t, err)
	assert.Equal(t, 401, statusOf(t, err))
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	meta := credential.Metadata{ID: uuid.New(), ServiceName: "github", Username: "alice"}
	svc.On("Create", mock.Anything, 7, credential.CreateRequest{
		ServiceName: "github",
		Username:    "alice",
		Secret:      "hunter2",
	}).Return(meta, nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.create(authedCtx(7), &createInput{
		Body: CreateRequest{ServiceName: "github", Username: "alice", Secret: "hunter2"},
	})

	require.NoError(t, err)
	assert.Equal(t, meta.ID, out.Body.Credential.ID)
	assert.Equal(t, "Ok", out.Body.Status)
}

func TestHandler_Create_InvalidInput(t *testing.T) {
	svc := new(MockService)
	svc.On("Create", mock.Anything, 7, mock.Anything).
		Return(credential.Metadata{}, credential.ErrInvalidInput)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.create(authedCtx(7), &createInput{Body: CreateRequest{ServiceName: " "}})

	require.Error(t, err)
	assert.Equal(t, 422, statusOf(t, err))
}

func TestHandler_Reveal(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("Reveal", mock.Anything, 7, id).Return("hunter2", nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.reveal(authedCtx(7), &idInput{ID: id})

	require.NoError(t, err)
	assert.Equal(t, "hunter2", out.Body.Secret)
}

// A foreign credential and a missing one must be indistinguishable to the
// caller: both come back as 404.
func TestHandler_NotFoundAndForbiddenCollapse(t *testing.T) {
	id := uuid.New()

	for name, domainErr := range map[string]error{
		"not found": credential.ErrNotFound,
		"forbidden": credential.ErrForbidden,
	} {
		t.Run(name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Reveal", mock.Anything, 7, id).Return("", domainErr)

			h := NewHandler(svc, slog.Default(), huma.Middlewares{})
			_, err := h.reveal(authedCtx(7), &idInput{ID: id})

			require.Error(t, err)
			assert.Equal(t, 404, statusOf(t, err))

			var statusErr huma.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.NotContains(t, statusErr.Error(), "forbidden")
		})
	}
}

func TestHandler_Restore_InvalidState(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("Restore", mock.Anything, 7, id).
		Return(credential.Metadata{}, credential.ErrInvalidState)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.restore(authedCtx(7), &idInput{ID: id})

	require.Error(t, err)
	assert.Equal(t, 409, statusOf(t, err))
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("SoftDelete", mock.Anything, 7, id).Return(nil)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	out, err := h.delete(authedCtx(7), &idInput{ID: id})

	require.NoError(t, err)
	assert.Equal(t, "Ok", out.Body.Status)
}

func TestHandler_Purge_NotInTrash(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("Purge", mock.Anything, 7, id).Return(credential.ErrInvalidState)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.purge(authedCtx(7), &idInput{ID: id})

	require.Error(t, err)
	assert.Equal(t, 409, statusOf(t, err))
}

func TestHandler_Update_PassthroughError(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	boom := errors.New("storage down")
	svc.On("Update", mock.Anything, 7, id, mock.Anything).
		Return(credential.Metadata{}, boom)

	h := NewHandler(svc, slog.Default(), huma.Middlewares{})
	_, err := h.update(authedCtx(7), &updateInput{ID: id})

	assert.ErrorIs(t, err, boom)
}
