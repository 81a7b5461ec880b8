package stepup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const fileMode = 0o600

// Store persists the verification deadline between CLI invocations. Each
// command is a fresh process, so without the file every vault access would
// re-prompt regardless of the remember window.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

type sessionFile struct {
	ValidUntil time.Time `json:"valid_until"`
}

// Load rebuilds the clock from disk. A missing, corrupt or expired file
// yields an unarmed clock; corrupt files are removed on sight.
func (s *Store) Load(now time.Time) *Clock {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return NewClock()
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		_ = os.Remove(s.path)
		return NewClock()
	}

	return Resume(f.ValidUntil, now)
}

func (s *Store) Save(c *Clock) error {
	validUntil := c.ValidUntil()
	if validUntil.IsZero() {
		return s.Clear()
	}

	data, err := json.Marshal(sessionFile{ValidUntil: validUntil})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := os.WriteFile(s.path, data, fileMode); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}

func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
