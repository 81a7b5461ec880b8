package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"passvault/internal/domain/credential"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type CredentialRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCredentialRepository(pool *pgxpool.Pool, log *slog.Logger) *CredentialRepository {
	return &CredentialRepository{
		pool: pool,
		log:  log.With("component", "credential_repository"),
	}
}

// List returns active credentials, newest-created first. The encrypted
// secret is excluded at the query level so no listing path can leak it.
func (r *CredentialRepository) List(ctx context.Context, ownerID int) ([]credential.Credential, error) {
	const query = `
		SELECT id, owner_id, service_name, username, category, created_at, is_deleted, deleted_at
		FROM credentials
		WHERE owner_id = $1 AND NOT is_deleted
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list credentials", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	defer rows.Close()

	return r.scanMetaRows(rows)
}

// ListTrash returns soft-deleted credentials, newest-deleted first.
func (r *CredentialRepository) ListTrash(ctx context.Context, ownerID int) ([]credential.Credential, error) {
	const query = `
		SELECT id, owner_id, service_name, username, category, created_at, is_deleted, deleted_at
		FROM credentials
		WHERE owner_id = $1 AND is_deleted
		ORDER BY deleted_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list trash", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list trash: %w", err)
	}
	defer rows.Close()

	return r.scanMetaRows(rows)
}

// Get loads a credential by id regardless of owner or lifecycle state;
// the service layer decides who may see it.
func (r *CredentialRepository) Get(ctx context.Context, id uuid.UUID) (*credential.Credential, error) {
	const query = `
		SELECT id, owner_id, service_name, username, encrypted_secret, category,
		       created_at, is_deleted, deleted_at
		FROM credentials
		WHERE id = $1`

	var cred credential.Credential
	var deletedAt sql.NullTime

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cred.ID, &cred.OwnerID, &cred.ServiceName, &cred.Username,
		&cred.EncryptedSecret, &cred.Category, &cred.CreatedAt,
		&cred.IsDeleted, &deletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, credential.ErrNotFound
		}
		r.log.Error("failed to get credential", "credential_id", id, "error", err)
		return nil, fmt.Errorf("get credential: %w", err)
	}

	if deletedAt.Valid {
		cred.DeletedAt = &deletedAt.Time
	}

	return &cred, nil
}

func (r *CredentialRepository) Create(ctx context.Context, cred *credential.Credential) error {
	const query = `
		INSERT INTO credentials (id, owner_id, service_name, username, encrypted_secret, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		cred.ID, cred.OwnerID, cred.ServiceName, cred.Username,
		cred.EncryptedSecret, cred.Category, cred.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to create credential", "owner_id", cred.OwnerID, "error", err)
		return fmt.Errorf("create credential: %w", err)
	}

	return nil
}

func (r *CredentialRepository) Update(ctx context.Context, cred *credential.Credential) error {
	const query = `
		UPDATE credentials
		SET service_name = $1, username = $2, encrypted_secret = $3, category = $4
		WHERE id = $5 AND owner_id = $6`

	result, err := r.pool.Exec(ctx, query,
		cred.ServiceName, cred.Username, cred.EncryptedSecret, cred.Category,
		cred.ID, cred.OwnerID,
	)
	if err != nil {
		r.log.Error("failed to update credential", "credential_id", cred.ID, "error", err)
		return fmt.Errorf("update credential: %w", err)
	}

	if result.RowsAffected() == 0 {
		return credential.ErrNotFound
	}

	return nil
}

// SoftDelete is a single conditional update; concurrent deletes of the same
// row resolve here, not in application code.
func (r *CredentialRepository) SoftDelete(ctx context.Context, ownerID int, id uuid.UUID, deletedAt time.Time) (bool, error) {
	const query = `
		UPDATE credentials
		SET is_deleted = TRUE, deleted_at = $3
		WHERE id = $1 AND owner_id = $2 AND NOT is_deleted`

	result, err := r.pool.Exec(ctx, query, id, ownerID, deletedAt)
	if err != nil {
		r.log.Error("failed to soft delete credential", "credential_id", id, "error", err)
		return false, fmt.Errorf("soft delete credential: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *CredentialRepository) Restore(ctx context.Context, ownerID int, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE credentials
		SET is_deleted = FALSE, deleted_at = NULL
		WHERE id = $1 AND owner_id = $2 AND is_deleted`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to restore credential", "credential_id", id, "error", err)
		return false, fmt.Errorf("restore credential: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Purge only removes rows already in trash; an active row is never deleted
// even if a stale caller asks for it.
func (r *CredentialRepository) Purge(ctx context.Context, ownerID int, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM credentials WHERE id = $1 AND owner_id = $2 AND is_deleted`

	result, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		r.log.Error("failed to purge credential", "credential_id", id, "error", err)
		return false, fmt.Errorf("purge credential: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *CredentialRepository) scanMetaRows(rows pgx.Rows) ([]credential.Credential, error) {
	var creds []credential.Credential

	for rows.Next() {
		var cred credential.Credential
		var deletedAt sql.NullTime

		err := rows.Scan(
			&cred.ID, &cred.OwnerID, &cred.ServiceName, &cred.Username,
			&cred.Category, &cred.CreatedAt, &cred.IsDeleted, &deletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan credential: %w", err)
		}

		if deletedAt.Valid {
			cred.DeletedAt = &deletedAt.Time
		}

		creds = append(creds, cred)
	}

	return creds, rows.Err()
}
