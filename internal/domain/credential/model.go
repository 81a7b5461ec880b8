package credential

import (
	"time"

	"github.com/google/uuid"
)

const DefaultCategory = "Uncategorized"

// Credential is a stored service/username/secret triple owned by one account.
// The secret only ever exists in encrypted form here; plaintext passes
// through the service boundary and is never persisted.
type Credential struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         int        `json:"owner_id"`
	ServiceName     string     `json:"service_name"`
	Username        string     `json:"username"`
	EncryptedSecret string     `json:"-"`
	Category        string     `json:"category"`
	CreatedAt       time.Time  `json:"created_at"`
	IsDeleted       bool       `json:"is_deleted"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// Metadata is the listable view of a credential: everything except the
// encrypted secret. List and trash endpoints only ever return this shape.
type Metadata struct {
	ID          uuid.UUID  `json:"id"`
	ServiceName string     `json:"service_name"`
	Username    string     `json:"username"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func (c *Credential) Meta() Metadata {
	return Metadata{
		ID:          c.ID,
		ServiceName: c.ServiceName,
		Username:    c.Username,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		DeletedAt:   c.DeletedAt,
	}
}
