package client

import "time"

// CredentialMeta mirrors the server's listable credential view. The secret
// never appears here; it only arrives through Reveal.
type CredentialMeta struct {
	ID          string     `json:"id"`
	ServiceName string     `json:"service_name"`
	Username    string     `json:"username"`
	Category    string     `json:"category"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

type CreateCredentialRequest struct {
	ServiceName string `json:"service_name"`
	Username    string `json:"username"`
	Secret      string `json:"secret"`
	Category    string `json:"category,omitempty"`
}

type UpdateCredentialRequest struct {
	ServiceName *string `json:"service_name,omitempty"`
	Username    *string `json:"username,omitempty"`
	Category    *string `json:"category,omitempty"`
	Secret      string  `json:"secret,omitempty"`
}

type StepupSettings struct {
	Enabled         bool `json:"enabled"`
	RememberMinutes int  `json:"remember_minutes"`
}
