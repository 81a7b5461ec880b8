package stepup

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Settings(ctx context.Context, ownerID int) (Settings, error)
	Enable(ctx context.Context, ownerID int, secret string, rememberMinutes int) error
	Disable(ctx context.Context, ownerID int) error
	Verify(ctx context.Context, ownerID int, candidate string) (bool, error)
	UpdateRememberMinutes(ctx context.Context, ownerID, minutes int) error
}

// Service is the secondary-auth gate: a second password, independent of the
// login password, required before secrets are revealed. It is a second line
// of defense against a stolen primary session, so enable/verify must sit
// behind the transport layer's rate limiting.
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "stepup_service"),
	}
}

// Settings returns the gate state for an owner. A missing config reads as
// disabled with the default remember duration; nothing is created.
func (s *Service) Settings(ctx context.Context, ownerID int) (Settings, error) {
	cfg, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DefaultSettings(), nil
		}
		s.log.Error("failed to get step-up settings", "owner_id", ownerID, "error", err)
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return cfg.Settings(), nil
}

// Enable sets up or replaces the secondary password. Every call carries a
// secret and fully replaces the stored hash; there is no hashless re-enable.
func (s *Service) Enable(ctx context.Context, ownerID int, secret string, rememberMinutes int) error {
	cfg, err := NewConfig(ownerID, secret, rememberMinutes)
	if err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, cfg); err != nil {
		s.log.Error("failed to enable step-up", "owner_id", ownerID, "error", err)
		return fmt.Errorf("enable step-up: %w", err)
	}

	s.log.Info("step-up enabled", "owner_id", ownerID, "remember_minutes", rememberMinutes)
	return nil
}

// Disable flips the flag but keeps the row, so settings survive until the
// owner enables again with a fresh secret.
func (s *Service) Disable(ctx context.Context, ownerID int) error {
	changed, err := s.repo.SetEnabled(ctx, ownerID, false)
	if err != nil {
		s.log.Error("failed to disable step-up", "owner_id", ownerID, "error", err)
		return fmt.Errorf("disable step-up: %w", err)
	}
	if !changed {
		return ErrNotFound
	}

	s.log.Info("step-up disabled", "owner_id", ownerID)
	return nil
}

// Verify checks a candidate against the stored hash. A mismatch is a normal
// false result; only a disabled or absent gate is an error, so the client
// can tell "wrong password" from "set up secondary password first".
func (s *Service) Verify(ctx context.Context, ownerID int, candidate string) (bool, error) {
	cfg, err := s.repo.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, ErrNotEnabled
		}
		s.log.Error("failed to load step-up config", "owner_id", ownerID, "error", err)
		return false, fmt.Errorf("verify step-up: %w", err)
	}

	if !cfg.IsEnabled {
		return false, ErrNotEnabled
	}

	if !cfg.Compare(candidate) {
		s.log.Debug("step-up verification failed", "owner_id", ownerID)
		return false, nil
	}

	return true, nil
}

func (s *Service) UpdateRememberMinutes(ctx context.Context, ownerID, minutes int) error {
	if minutes < 0 || minutes > MaxRememberMinutes {
		return fmt.Errorf("%w: remember duration must be between 0 and %d minutes", ErrInvalidInput, MaxRememberMinutes)
	}

	changed, err := s.repo.UpdateRememberMinutes(ctx, ownerID, minutes)
	if err != nil {
		s.log.Error("failed to update remember duration", "owner_id", ownerID, "error", err)
		return fmt.Errorf("update remember duration: %w", err)
	}
	if !changed {
		return ErrNotFound
	}

	s.log.Info("remember duration updated", "owner_id", ownerID, "remember_minutes", minutes)
	return nil
}
