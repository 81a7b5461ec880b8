package credential

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists credentials. State transitions (SoftDelete, Restore,
// Purge) must be single conditional statements: the returned bool reports
// whether a row actually changed, so concurrent transitions on the same id
// are decided by the storage layer, not by read-then-write races.
type Repository interface {
	List(ctx context.Context, ownerID int) ([]Credential, error)
	ListTrash(ctx context.Context, ownerID int) ([]Credential, error)
	Get(ctx context.Context, id uuid.UUID) (*Credential, error)
	Create(ctx context.Context, cred *Credential) error
	Update(ctx context.Context, cred *Credential) error
	SoftDelete(ctx context.Context, ownerID int, id uuid.UUID, deletedAt time.Time) (bool, error)
	Restore(ctx context.Context, ownerID int, id uuid.UUID) (bool, error)
	Purge(ctx context.Context, ownerID int, id uuid.UUID) (bool, error)
}
