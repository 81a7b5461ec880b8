package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"passvault/internal/app/client/config"
	"passvault/internal/app/client/stepup"

	"golang.org/x/exp/slog"
)

// ErrStepupRequired is returned by EnsureStepup when the gate is enabled,
// the clock has expired and no prompter was supplied.
var ErrStepupRequired = errors.New("secondary password verification required")

// SecretPrompter asks the user for the secondary password.
type SecretPrompter func() (string, error)

// App is the client facade the CLI commands talk to. It owns the HTTP
// client, the persisted token, the step-up session clock and the offline
// metadata cache.
type App struct {
	config      *config.Config
	log         *slog.Logger
	http        *httpClient
	cache       *SQLiteCache
	stepupStore *stepup.Store
	clock       *stepup.Clock
	now         func() time.Time
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl := newHTTPClient(cfg, log)

	// The cache is a convenience; a broken local db must not block
	// online use.
	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		log.Warn("offline cache unavailable", "error", err)
		cache = nil
	}

	store := stepup.NewStore(cfg.StepupPath)

	app := &App{
		config:      cfg,
		log:         log,
		http:        httpCl,
		cache:       cache,
		stepupStore: store,
		clock:       store.Load(time.Now()),
		now:         time.Now,
	}

	if token, err := os.ReadFile(cfg.TokenPath); err == nil {
		httpCl.SetToken(strings.TrimSpace(string(token)))
	}

	return app, nil
}

func (a *App) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

func (a *App) IsAuthenticated() bool {
	return a.http.token != ""
}

func (a *App) Register(ctx context.Context, login, password string) error {
	return a.http.Register(ctx, login, password)
}

func (a *App) Login(ctx context.Context, login, password string) error {
	token, err := a.http.Login(ctx, login, password)
	if err != nil {
		return err
	}

	a.http.SetToken(token)

	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0o600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

// Logout revokes the server session and wipes local state: the token file
// and any remembered step-up verification.
func (a *App) Logout(ctx context.Context) error {
	if err := a.http.Logout(ctx); err != nil && !errors.Is(err, ErrUnauthorized) {
		a.log.Warn("server-side logout failed", "error", err)
	}

	a.http.SetToken("")
	a.LockStepup()

	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove token: %w", err)
	}

	return nil
}

func (a *App) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return a.http.ChangePassword(ctx, oldPassword, newPassword)
}

// List fetches the active credentials and refreshes the offline cache on
// success.
func (a *App) List(ctx context.Context) ([]CredentialMeta, error) {
	metas, err := a.http.ListCredentials(ctx)
	if err != nil {
		return nil, err
	}

	if a.cache != nil {
		if cacheErr := a.cache.Replace(metas); cacheErr != nil {
			a.log.Warn("failed to refresh offline cache", "error", cacheErr)
		}
	}

	return metas, nil
}

// ListOffline serves the last cached listing without touching the network.
func (a *App) ListOffline() ([]CredentialMeta, error) {
	if a.cache == nil {
		return nil, fmt.Errorf("offline cache unavailable")
	}
	return a.cache.List()
}

func (a *App) ListTrash(ctx context.Context) ([]CredentialMeta, error) {
	return a.http.ListTrash(ctx)
}

func (a *App) Add(ctx context.Context, req CreateCredentialRequest) (CredentialMeta, error) {
	return a.http.CreateCredential(ctx, req)
}

// Reveal returns the plaintext secret, passing the step-up gate first if
// the account has one enabled.
func (a *App) Reveal(ctx context.Context, id string, prompt SecretPrompter) (string, error) {
	if err := a.EnsureStepup(ctx, prompt); err != nil {
		return "", err
	}
	return a.http.RevealCredential(ctx, id)
}

func (a *App) Update(ctx context.Context, id string, req UpdateCredentialRequest) (CredentialMeta, error) {
	return a.http.UpdateCredential(ctx, id, req)
}

func (a *App) Delete(ctx context.Context, id string) error {
	return a.http.DeleteCredential(ctx, id)
}

func (a *App) Restore(ctx context.Context, id string) (CredentialMeta, error) {
	return a.http.RestoreCredential(ctx, id)
}

func (a *App) Purge(ctx context.Context, id string) error {
	return a.http.PurgeCredential(ctx, id)
}

// EnsureStepup passes the secondary password gate. If the gate is disabled
// or a previous verification is still fresh, it is a no-op. Otherwise the
// prompter is invoked and a successful verification arms the clock for the
// window the server granted.
func (a *App) EnsureStepup(ctx context.Context, prompt SecretPrompter) error {
	settings, err := a.http.StepupSettings(ctx)
	if err != nil {
		return fmt.Errorf("fetch gate settings: %w", err)
	}

	if !settings.Enabled {
		return nil
	}

	now := a.now()
	if a.clock.IsValid(now) {
		return nil
	}

	if prompt == nil {
		return ErrStepupRequired
	}

	secret, err := prompt()
	if err != nil {
		return fmt.Errorf("read secondary password: %w", err)
	}

	minutes, err := a.http.StepupVerify(ctx, secret)
	if err != nil {
		return err
	}

	a.clock.MarkAuthenticated(now, minutes)
	if err := a.stepupStore.Save(a.clock); err != nil {
		a.log.Warn("failed to persist step-up session", "error", err)
	}

	return nil
}

func (a *App) StepupSettings(ctx context.Context) (StepupSettings, error) {
	return a.http.StepupSettings(ctx)
}

// EnableStepup sets a fresh secondary password. Any remembered verification
// belongs to the old secret, so the clock is dropped.
func (a *App) EnableStepup(ctx context.Context, secret string, rememberMinutes int) error {
	if err := a.http.StepupEnable(ctx, secret, rememberMinutes); err != nil {
		return err
	}

	a.LockStepup()
	return nil
}

func (a *App) DisableStepup(ctx context.Context) error {
	if err := a.http.StepupDisable(ctx); err != nil {
		return err
	}

	a.LockStepup()
	return nil
}

func (a *App) UpdateStepupWindow(ctx context.Context, rememberMinutes int) error {
	return a.http.StepupUpdateSettings(ctx, rememberMinutes)
}

// LockStepup forgets the current verification immediately, regardless of
// how much of the window was left.
func (a *App) LockStepup() {
	a.clock.Invalidate()
	if err := a.stepupStore.Clear(); err != nil {
		a.log.Warn("failed to clear step-up session", "error", err)
	}
}
