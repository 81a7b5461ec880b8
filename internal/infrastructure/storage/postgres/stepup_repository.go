package postgres

import (
	"context"
	"errors"
	"fmt"

	"passvault/internal/domain/stepup"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"
)

type StepupRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewStepupRepository(pool *pgxpool.Pool, log *slog.Logger) *StepupRepository {
	return &StepupRepository{
		pool: pool,
		log:  log.With("component", "stepup_repository"),
	}
}

func (r *StepupRepository) Get(ctx context.Context, ownerID int) (*stepup.Config, error) {
	const query = `
		SELECT owner_id, secret_hash, remember_minutes, is_enabled, created_at, updated_at
		FROM stepup_configs
		WHERE owner_id = $1`

	var cfg stepup.Config
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&cfg.OwnerID, &cfg.SecretHash, &cfg.RememberMinutes,
		&cfg.IsEnabled, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, stepup.ErrNotFound
		}
		r.log.Error("failed to get stepup config", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get stepup config: %w", err)
	}

	return &cfg, nil
}

// Upsert replaces the whole config on conflict. Re-enabling always means
// a fresh secret, so there is no partial merge to do.
func (r *StepupRepository) Upsert(ctx context.Context, cfg *stepup.Config) error {
	const query = `
		INSERT INTO stepup_configs (owner_id, secret_hash, remember_minutes, is_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (owner_id) DO UPDATE
		SET secret_hash = EXCLUDED.secret_hash,
		    remember_minutes = EXCLUDED.remember_minutes,
		    is_enabled = EXCLUDED.is_enabled,
		    updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query,
		cfg.OwnerID, cfg.SecretHash, cfg.RememberMinutes, cfg.IsEnabled, cfg.CreatedAt,
	)
	if err != nil {
		r.log.Error("failed to upsert stepup config", "owner_id", cfg.OwnerID, "error", err)
		return fmt.Errorf("upsert stepup config: %w", err)
	}

	return nil
}

func (r *StepupRepository) SetEnabled(ctx context.Context, ownerID int, enabled bool) (bool, error) {
	const query = `
		UPDATE stepup_configs
		SET is_enabled = $2, updated_at = NOW()
		WHERE owner_id = $1`

	result, err := r.pool.Exec(ctx, query, ownerID, enabled)
	if err != nil {
		r.log.Error("failed to set stepup enabled", "owner_id", ownerID, "error", err)
		return false, fmt.Errorf("set stepup enabled: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *StepupRepository) UpdateRememberMinutes(ctx context.Context, ownerID int, minutes int) (bool, error) {
	const query = `
		UPDATE stepup_configs
		SET remember_minutes = $2, updated_at = NOW()
		WHERE owner_id = $1`

	result, err := r.pool.Exec(ctx, query, ownerID, minutes)
	if err != nil {
		r.log.Error("failed to update remember window", "owner_id", ownerID, "error", err)
		return false, fmt.Errorf("update remember minutes: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
