package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"passvault/internal/app/client/config"

	"golang.org/x/exp/slog"
)

var (
	// ErrUnauthorized covers expired tokens and failed step-up checks alike.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "Passvault-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/health", nil)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, login, password string) error {
	body := map[string]string{"login": login, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/register", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, login, password string) (string, error) {
	body := map[string]string{"login": login, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	return loginResp.Token, nil
}

func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/change-password", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListCredentials(ctx context.Context) ([]CredentialMeta, error) {
	return h.listCredentials(ctx, "/api/credentials")
}

func (h *httpClient) ListTrash(ctx context.Context) ([]CredentialMeta, error) {
	return h.listCredentials(ctx, "/api/credentials/trash")
}

func (h *httpClient) listCredentials(ctx context.Context, path string) ([]CredentialMeta, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var listResp struct {
		Credentials []CredentialMeta `json:"credentials"`
	}
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Credentials, nil
}

func (h *httpClient) CreateCredential(ctx context.Context, req CreateCredentialRequest) (CredentialMeta, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/credentials", req)
	if err != nil {
		return CredentialMeta{}, err
	}
	return h.parseMetaResponse(resp)
}

func (h *httpClient) RevealCredential(ctx context.Context, id string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/credentials/"+id+"/reveal", nil)
	if err != nil {
		return "", err
	}

	var revealResp struct {
		Secret string `json:"secret"`
	}
	if err := h.parseResponse(resp, &revealResp); err != nil {
		return "", err
	}

	return revealResp.Secret, nil
}

func (h *httpClient) UpdateCredential(ctx context.Context, id string, req UpdateCredentialRequest) (CredentialMeta, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/credentials/"+id, req)
	if err != nil {
		return CredentialMeta{}, err
	}
	return h.parseMetaResponse(resp)
}

func (h *httpClient) DeleteCredential(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/credentials/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) RestoreCredential(ctx context.Context, id string) (CredentialMeta, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/credentials/"+id+"/restore", nil)
	if err != nil {
		return CredentialMeta{}, err
	}
	return h.parseMetaResponse(resp)
}

func (h *httpClient) PurgeCredential(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/credentials/"+id+"/permanent", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) StepupSettings(ctx context.Context) (StepupSettings, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/stepup/settings", nil)
	if err != nil {
		return StepupSettings{}, err
	}

	var settings StepupSettings
	if err := h.parseResponse(resp, &settings); err != nil {
		return StepupSettings{}, err
	}

	return settings, nil
}

func (h *httpClient) StepupEnable(ctx context.Context, secret string, rememberMinutes int) error {
	body := map[string]any{"secret": secret, "remember_minutes": rememberMinutes}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/stepup/enable", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) StepupDisable(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/stepup/disable", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// StepupVerify returns the remember window granted by the server on success.
func (h *httpClient) StepupVerify(ctx context.Context, secret string) (int, error) {
	body := map[string]string{"secret": secret}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/stepup/verify", body)
	if err != nil {
		return 0, err
	}

	var verifyResp struct {
		Valid           bool `json:"valid"`
		RememberMinutes int  `json:"remember_minutes"`
	}
	if err := h.parseResponse(resp, &verifyResp); err != nil {
		return 0, err
	}

	return verifyResp.RememberMinutes, nil
}

func (h *httpClient) StepupUpdateSettings(ctx context.Context, rememberMinutes int) error {
	body := map[string]int{"remember_minutes": rememberMinutes}

	resp, err := h.doRequest(ctx, http.MethodPut, "/api/stepup/settings", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "path", path)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseMetaResponse(resp *http.Response) (CredentialMeta, error) {
	var metaResp struct {
		Credential CredentialMeta `json:"credential"`
	}
	if err := h.parseResponse(resp, &metaResp); err != nil {
		return CredentialMeta{}, err
	}
	return metaResp.Credential, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	// Response bodies are not logged: reveal responses carry plaintext
	// secrets.
	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return h.statusError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}

func (h *httpClient) statusError(status int, body []byte) error {
	detail := fmt.Sprintf("status %d", status)

	var errResp struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Detail != "" {
			detail = errResp.Detail
		} else if errResp.Error != "" {
			detail = errResp.Error
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, detail)
	default:
		return fmt.Errorf("server error: %s", detail)
	}
}
