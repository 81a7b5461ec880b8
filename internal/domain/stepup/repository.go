package stepup

import (
	"context"
)

// Repository persists one Config per owner. SetEnabled and
// UpdateRememberMinutes are single conditional updates; the bool reports
// whether a row existed.
type Repository interface {
	Get(ctx context.Context, ownerID int) (*Config, error)
	Upsert(ctx context.Context, cfg *Config) error
	SetEnabled(ctx context.Context, ownerID int, enabled bool) (bool, error)
	UpdateRememberMinutes(ctx context.Context, ownerID, minutes int) (bool, error)
}
