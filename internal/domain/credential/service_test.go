package credential

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ownerID int) ([]Credential, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Credential), args.Error(1)
}

func (m *MockRepository) ListTrash(ctx context.Context, ownerID int) ([]Credential, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Credential), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id uuid.UUID) (*Credential, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Credential), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, cred *Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, cred *Credential) error {
	args := m.Called(ctx, cred)
	return args.Error(0)
}

func (m *MockRepository) SoftDelete(ctx context.Context, ownerID int, id uuid.UUID, deletedAt time.Time) (bool, error) {
	args := m.Called(ctx, ownerID, id, deletedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Restore(ctx context.Context, ownerID int, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Purge(ctx context.Context, ownerID int, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID, id)
	return args.Bool(0), args.Error(1)
}

// fakeCipher is a reversible stand-in for the AES cipher.
type fakeCipher struct{}

func (fakeCipher) Encrypt(plaintext string) (string, error) {
	return "enc:" + plaintext, nil
}

func (fakeCipher) Decrypt(ciphertext string) (string, error) {
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, fakeCipher{}, slog.Default())
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *Credential) bool {
		return c.OwnerID == 1 &&
			c.ServiceName == "Mail" &&
			c.Username == "a@x.com" &&
			c.EncryptedSecret == "enc:Sup3r$ecret" &&
			c.Category == DefaultCategory &&
			!c.IsDeleted
	})).Return(nil)

	meta, err := service.Create(context.Background(), 1, CreateRequest{
		ServiceName: "Mail",
		Username:    "a@x.com",
		Secret:      "Sup3r$ecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mail", meta.ServiceName)
	assert.Equal(t, "a@x.com", meta.Username)
	assert.Equal(t, DefaultCategory, meta.Category)
	assert.NotEqual(t, uuid.Nil, meta.ID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateRequest
	}{
		{name: "empty service name", req: CreateRequest{Username: "u", Secret: "s"}},
		{name: "empty username", req: CreateRequest{ServiceName: "svc", Secret: "s"}},
		{name: "empty secret", req: CreateRequest{ServiceName: "svc", Username: "u"}},
		{name: "whitespace service name", req: CreateRequest{ServiceName: "  ", Username: "u", Secret: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)

			_, err := service.Create(context.Background(), 1, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			mockRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestService_List_OmitsSecret(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("List", mock.Anything, 1).Return([]Credential{
		{ID: id, OwnerID: 1, ServiceName: "Mail", Username: "a@x.com", EncryptedSecret: "enc:boom", Category: "Email"},
	}, nil)

	items, err := service.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "Mail", items[0].ServiceName)
	// Metadata has no secret field at all; double-check nothing leaks via it.
	assert.NotContains(t, []string{items[0].ServiceName, items[0].Username, items[0].Category}, "enc:boom")

	mockRepo.AssertExpectations(t)
}

func TestService_Reveal(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, EncryptedSecret: "enc:Sup3r$ecret",
	}, nil)

	plaintext, err := service.Reveal(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Equal(t, "Sup3r$ecret", plaintext)
}

func TestService_Reveal_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(nil, ErrNotFound)

	_, err := service.Reveal(context.Background(), 1, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_OwnershipIsolation(t *testing.T) {
	// Owner 2 must not be able to touch owner 1's credential through any
	// mutating or revealing operation.
	id := uuid.New()
	owned := &Credential{ID: id, OwnerID: 1, EncryptedSecret: "enc:x", IsDeleted: true}

	ops := map[string]func(s *Service) error{
		"reveal": func(s *Service) error {
			_, err := s.Reveal(context.Background(), 2, id)
			return err
		},
		"update": func(s *Service) error {
			name := "new"
			_, err := s.Update(context.Background(), 2, id, UpdateRequest{ServiceName: &name})
			return err
		},
		"soft delete": func(s *Service) error {
			return s.SoftDelete(context.Background(), 2, id)
		},
		"restore": func(s *Service) error {
			_, err := s.Restore(context.Background(), 2, id)
			return err
		},
		"purge": func(s *Service) error {
			return s.Purge(context.Background(), 2, id)
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := newTestService(mockRepo)
			mockRepo.On("Get", mock.Anything, id).Return(owned, nil)

			err := op(service)
			assert.ErrorIs(t, err, ErrForbidden)
			mockRepo.AssertNotCalled(t, "Update")
			mockRepo.AssertNotCalled(t, "SoftDelete")
			mockRepo.AssertNotCalled(t, "Restore")
			mockRepo.AssertNotCalled(t, "Purge")
		})
	}
}

func TestService_Update_PartialFields(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, ServiceName: "Mail", Username: "a@x.com",
		EncryptedSecret: "enc:old", Category: "Email",
	}, nil)

	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Credential) bool {
		return c.ServiceName == "Mail2" &&
			c.Username == "a@x.com" &&
			c.EncryptedSecret == "enc:old" // absent secret leaves ciphertext untouched
	})).Return(nil)

	name := "Mail2"
	meta, err := service.Update(context.Background(), 1, id, UpdateRequest{ServiceName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Mail2", meta.ServiceName)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_ReencryptsSecret(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, ServiceName: "Mail", Username: "a@x.com", EncryptedSecret: "enc:old",
	}, nil)

	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *Credential) bool {
		return c.EncryptedSecret == "enc:newpass"
	})).Return(nil)

	_, err := service.Update(context.Background(), 1, id, UpdateRequest{Secret: "newpass"})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_EmptyFieldRejected(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{ID: id, OwnerID: 1}, nil)

	empty := ""
	_, err := service.Update(context.Background(), 1, id, UpdateRequest{ServiceName: &empty})
	assert.ErrorIs(t, err, ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_SoftDelete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{ID: id, OwnerID: 1}, nil)
	mockRepo.On("SoftDelete", mock.Anything, 1, id, mock.AnythingOfType("time.Time")).Return(true, nil)

	err := service.SoftDelete(context.Background(), 1, id)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_SoftDelete_Idempotent(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	deletedAt := time.Now().Add(-time.Hour)
	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, IsDeleted: true, DeletedAt: &deletedAt,
	}, nil)

	// Second delete succeeds without touching the row or the timestamp.
	err := service.SoftDelete(context.Background(), 1, id)
	require.NoError(t, err)
	mockRepo.AssertNotCalled(t, "SoftDelete")
}

func TestService_Restore(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	deletedAt := time.Now()
	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, ServiceName: "Mail", IsDeleted: true, DeletedAt: &deletedAt,
	}, nil)
	mockRepo.On("Restore", mock.Anything, 1, id).Return(true, nil)

	meta, err := service.Restore(context.Background(), 1, id)
	require.NoError(t, err)
	assert.Nil(t, meta.DeletedAt)

	mockRepo.AssertExpectations(t)
}

func TestService_Restore_NotInTrash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{ID: id, OwnerID: 1}, nil)

	_, err := service.Restore(context.Background(), 1, id)
	assert.ErrorIs(t, err, ErrInvalidState)
	mockRepo.AssertNotCalled(t, "Restore")
}

func TestService_Purge(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	deletedAt := time.Now()
	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, IsDeleted: true, DeletedAt: &deletedAt,
	}, nil)
	mockRepo.On("Purge", mock.Anything, 1, id).Return(true, nil)

	err := service.Purge(context.Background(), 1, id)
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Purge_NotInTrash(t *testing.T) {
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{ID: id, OwnerID: 1}, nil)

	err := service.Purge(context.Background(), 1, id)
	assert.ErrorIs(t, err, ErrInvalidState)
	mockRepo.AssertNotCalled(t, "Purge")
}

func TestService_Purge_LostRace(t *testing.T) {
	// A concurrent purge removed the row between the read and the delete.
	mockRepo := new(MockRepository)
	service := newTestService(mockRepo)

	deletedAt := time.Now()
	id := uuid.New()
	mockRepo.On("Get", mock.Anything, id).Return(&Credential{
		ID: id, OwnerID: 1, IsDeleted: true, DeletedAt: &deletedAt,
	}, nil)
	mockRepo.On("Purge", mock.Anything, 1, id).Return(false, nil)

	err := service.Purge(context.Background(), 1, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
