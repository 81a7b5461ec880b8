package stepup

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultRememberMinutes = 30
	MaxRememberMinutes     = 1440 // 24 hours
	MinSecretLen           = 6
)

// Config is the per-account secondary password: a bcrypt hash plus the
// client-communicated remember duration. At most one config exists per owner.
type Config struct {
	OwnerID         int       `json:"owner_id"`
	SecretHash      string    `json:"-"`
	RememberMinutes int       `json:"remember_minutes"`
	IsEnabled       bool      `json:"is_enabled"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Settings is what clients see: never the hash.
type Settings struct {
	Enabled         bool `json:"enabled"`
	RememberMinutes int  `json:"remember_minutes"`
}

// NewConfig hashes the secret up front so callers always persist the hashed
// shape. There is no save-hook magic: if you hold a Config, its secret is
// already hashed.
func NewConfig(ownerID int, secret string, rememberMinutes int) (*Config, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("%w: secret must be at least %d characters", ErrInvalidInput, MinSecretLen)
	}
	if rememberMinutes < 0 || rememberMinutes > MaxRememberMinutes {
		return nil, fmt.Errorf("%w: remember duration must be between 0 and %d minutes", ErrInvalidInput, MaxRememberMinutes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	now := time.Now()
	return &Config{
		OwnerID:         ownerID,
		SecretHash:      string(hash),
		RememberMinutes: rememberMinutes,
		IsEnabled:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Compare checks a candidate against the stored hash. Constant-time by way
// of bcrypt; a mismatch is a normal negative result.
func (c *Config) Compare(candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.SecretHash), []byte(candidate)) == nil
}

func (c *Config) Settings() Settings {
	return Settings{
		Enabled:         c.IsEnabled,
		RememberMinutes: c.RememberMinutes,
	}
}

// DefaultSettings is returned when no config exists; reads never create one.
func DefaultSettings() Settings {
	return Settings{
		Enabled:         false,
		RememberMinutes: DefaultRememberMinutes,
	}
}
