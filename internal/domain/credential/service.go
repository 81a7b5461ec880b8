package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Encryptor is the secret cipher consumed by the service. Secrets are set
// only via Encrypt and read only via Decrypt; nothing else touches them.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

type CreateRequest struct {
	ServiceName string
	Username    string
	Secret      string
	Category    string
}

// UpdateRequest carries the mutable fields. Nil pointers leave a field
// untouched; an empty Secret leaves the stored ciphertext as is.
type UpdateRequest struct {
	ServiceName *string
	Username    *string
	Category    *string
	Secret      string
}

type Servicer interface {
	List(ctx context.Context, ownerID int) ([]Metadata, error)
	ListTrash(ctx context.Context, ownerID int) ([]Metadata, error)
	Create(ctx context.Context, ownerID int, req CreateRequest) (Metadata, error)
	Reveal(ctx context.Context, ownerID int, id uuid.UUID) (string, error)
	Update(ctx context.Context, ownerID int, id uuid.UUID, req UpdateRequest) (Metadata, error)
	SoftDelete(ctx context.Context, ownerID int, id uuid.UUID) error
	Restore(ctx context.Context, ownerID int, id uuid.UUID) (Metadata, error)
	Purge(ctx context.Context, ownerID int, id uuid.UUID) error
}

// Service owns the credential lifecycle:
// Active --SoftDelete--> Trashed --Restore--> Active, Trashed --Purge--> gone.
type Service struct {
	repo   Repository
	cipher Encryptor
	log    *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, cipher Encryptor, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cipher: cipher,
		log:    log.With("component", "credential_service"),
		now:    time.Now,
	}
}

func (s *Service) List(ctx context.Context, ownerID int) ([]Metadata, error) {
	creds, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list credentials", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return toMetadata(creds), nil
}

func (s *Service) ListTrash(ctx context.Context, ownerID int) ([]Metadata, error) {
	creds, err := s.repo.ListTrash(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list trash", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list trash: %w", err)
	}
	return toMetadata(creds), nil
}

func (s *Service) Create(ctx context.Context, ownerID int, req CreateRequest) (Metadata, error) {
	if strings.TrimSpace(req.ServiceName) == "" ||
		strings.TrimSpace(req.Username) == "" ||
		req.Secret == "" {
		return Metadata{}, fmt.Errorf("%w: service name, username and secret are required", ErrInvalidInput)
	}

	encrypted, err := s.cipher.Encrypt(req.Secret)
	if err != nil {
		s.log.Error("failed to encrypt secret", "owner_id", ownerID, "error", err)
		return Metadata{}, fmt.Errorf("encrypt secret: %w", err)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = DefaultCategory
	}

	cred := &Credential{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		ServiceName:     req.ServiceName,
		Username:        req.Username,
		EncryptedSecret: encrypted,
		Category:        category,
		CreatedAt:       s.now(),
	}

	if err := s.repo.Create(ctx, cred); err != nil {
		s.log.Error("failed to create credential", "owner_id", ownerID, "error", err)
		return Metadata{}, fmt.Errorf("create credential: %w", err)
	}

	s.log.Info("credential created", "credential_id", cred.ID, "owner_id", ownerID)
	return cred.Meta(), nil
}

func (s *Service) Reveal(ctx context.Context, ownerID int, id uuid.UUID) (string, error) {
	cred, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Decrypt(cred.EncryptedSecret)
	if err != nil {
		// Integrity failure, not an auth failure. Logged without the payload.
		s.log.Error("failed to decrypt secret", "credential_id", id, "owner_id", ownerID, "error", err)
		return "", fmt.Errorf("decrypt secret: %w", err)
	}

	return plaintext, nil
}

func (s *Service) Update(ctx context.Context, ownerID int, id uuid.UUID, req UpdateRequest) (Metadata, error) {
	cred, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return Metadata{}, err
	}

	if req.ServiceName != nil {
		if strings.TrimSpace(*req.ServiceName) == "" {
			return Metadata{}, fmt.Errorf("%w: service name cannot be empty", ErrInvalidInput)
		}
		cred.ServiceName = *req.ServiceName
	}
	if req.Username != nil {
		if strings.TrimSpace(*req.Username) == "" {
			return Metadata{}, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
		}
		cred.Username = *req.Username
	}
	if req.Category != nil {
		cred.Category = strings.TrimSpace(*req.Category)
		if cred.Category == "" {
			cred.Category = DefaultCategory
		}
	}
	if req.Secret != "" {
		encrypted, err := s.cipher.Encrypt(req.Secret)
		if err != nil {
			s.log.Error("failed to encrypt secret", "credential_id", id, "error", err)
			return Metadata{}, fmt.Errorf("encrypt secret: %w", err)
		}
		cred.EncryptedSecret = encrypted
	}

	if err := s.repo.Update(ctx, cred); err != nil {
		s.log.Error("failed to update credential", "credential_id", id, "owner_id", ownerID, "error", err)
		return Metadata{}, fmt.Errorf("update credential: %w", err)
	}

	s.log.Info("credential updated", "credential_id", id, "owner_id", ownerID)
	return cred.Meta(), nil
}

// SoftDelete moves a credential to trash. Deleting an already-trashed
// credential is a no-op success.
func (s *Service) SoftDelete(ctx context.Context, ownerID int, id uuid.UUID) error {
	cred, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if cred.IsDeleted {
		return nil
	}

	// The conditional update may still hit zero rows if a concurrent delete
	// landed first; that outcome is the same no-op success.
	if _, err := s.repo.SoftDelete(ctx, ownerID, id, s.now()); err != nil {
		s.log.Error("failed to soft delete credential", "credential_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("soft delete credential: %w", err)
	}

	s.log.Info("credential moved to trash", "credential_id", id, "owner_id", ownerID)
	return nil
}

func (s *Service) Restore(ctx context.Context, ownerID int, id uuid.UUID) (Metadata, error) {
	cred, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return Metadata{}, err
	}

	if !cred.IsDeleted {
		return Metadata{}, fmt.Errorf("%w: credential is not in trash", ErrInvalidState)
	}

	changed, err := s.repo.Restore(ctx, ownerID, id)
	if err != nil {
		s.log.Error("failed to restore credential", "credential_id", id, "owner_id", ownerID, "error", err)
		return Metadata{}, fmt.Errorf("restore credential: %w", err)
	}
	if !changed {
		// Lost a race against purge or another restore.
		return Metadata{}, fmt.Errorf("%w: credential is not in trash", ErrInvalidState)
	}

	cred.IsDeleted = false
	cred.DeletedAt = nil

	s.log.Info("credential restored", "credential_id", id, "owner_id", ownerID)
	return cred.Meta(), nil
}

// Purge permanently removes a trashed credential. Purging an active
// credential fails: the trash step is a deliberate guard against
// accidental permanent loss.
func (s *Service) Purge(ctx context.Context, ownerID int, id uuid.UUID) error {
	cred, err := s.getOwned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if !cred.IsDeleted {
		return fmt.Errorf("%w: credential must be in trash before permanent deletion", ErrInvalidState)
	}

	changed, err := s.repo.Purge(ctx, ownerID, id)
	if err != nil {
		s.log.Error("failed to purge credential", "credential_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("purge credential: %w", err)
	}
	if !changed {
		return ErrNotFound
	}

	s.log.Info("credential purged", "credential_id", id, "owner_id", ownerID)
	return nil
}

// getOwned loads a credential and enforces ownership. Missing ids and
// foreign owners are distinct errors here even though handlers report both
// as not found.
func (s *Service) getOwned(ctx context.Context, ownerID int, id uuid.UUID) (*Credential, error) {
	cred, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("credential not found", "credential_id", id, "owner_id", ownerID)
			return nil, ErrNotFound
		}
		s.log.Error("failed to get credential", "credential_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get credential: %w", err)
	}

	if cred.OwnerID != ownerID {
		s.log.Warn("foreign credential access attempt", "credential_id", id, "owner_id", ownerID)
		return nil, ErrForbidden
	}

	return cred, nil
}

func toMetadata(creds []Credential) []Metadata {
	items := make([]Metadata, len(creds))
	for i, c := range creds {
		items[i] = c.Meta()
	}
	return items
}
