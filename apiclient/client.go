// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/E10-Naganiom/ofraud-dashboard-web/models"
)

// Client talks to the oFraud backend. It owns all field-name translation
// between the console's models and the backend's Spanish wire fields, and
// collapses every failure into *Error. It performs no UI side effects.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   func() string
}

// New creates a client for the backend at baseURL. token returns the
// current bearer token and may return "" while logged out.
func New(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
		token:   token,
	}
}

// Login authenticates with the backend and fetches the operator profile
// using the fresh token. The returned identity is normalized; the caller
// decides whether a non-admin may proceed.
func (c *Client) Login(ctx context.Context, email, password string) (string, *models.Identity, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", payload, &loginResp); err != nil {
		return "", nil, err
	}

	var profileResp struct {
		Profile wireProfile `json:"profile"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/profile", loginResp.AccessToken, nil, &profileResp); err != nil {
		return "", nil, err
	}

	return loginResp.AccessToken, profileResp.Profile.identity(), nil
}

// Register creates a new admin account. No auto-login happens here.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.Identity, error) {
	payload := map[string]any{
		"name":      req.Nombre,
		"apellido":  req.Apellido,
		"email":     req.Correo,
		"password":  req.Contrasena,
		"is_admin":  true,
		"is_active": true,
	}

	var created wireProfile
	if err := c.do(ctx, http.MethodPost, "/users", "", payload, &created); err != nil {
		return nil, err
	}
	return created.identity(), nil
}

// FetchIncident retrieves one incident with its nested category, supervisor
// and evidence.
func (c *Client) FetchIncident(ctx context.Context, id int64) (*models.Incident, error) {
	var wi wireIncident
	path := fmt.Sprintf("/admin/incidents/%d", id)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &wi); err != nil {
		return nil, err
	}
	return wi.incident(), nil
}

// SubmitEvaluation sends the full intended {status, supervisor} pair.
// A nil supervisorID unassigns. The backend returns no useful body; callers
// must re-fetch the incident for server truth.
func (c *Client) SubmitEvaluation(ctx context.Context, id int64, status models.IncidentStatus, supervisorID *int64) error {
	payload := map[string]any{
		"id_estatus": int(status),
		"supervisor": supervisorID,
	}
	path := fmt.Sprintf("/admin/incidents/%d/evaluate", id)
	return c.do(ctx, http.MethodPatch, path, "", payload, nil)
}

// FetchAdminRoster lists admin users eligible as incident supervisor.
func (c *Client) FetchAdminRoster(ctx context.Context) ([]models.AdminUser, error) {
	var wire []wireAdminUser
	if err := c.do(ctx, http.MethodGet, "/admin/users/admins", "", nil, &wire); err != nil {
		return nil, err
	}

	roster := make([]models.AdminUser, 0, len(wire))
	for _, wu := range wire {
		roster = append(roster, wu.adminUser())
	}
	return roster, nil
}

// do executes one request. overrideToken takes precedence over the token
// source; this lets Login fetch the profile before the session stores the
// token. Non-2xx responses are classified into the error taxonomy, and
// transport failures become KindNetwork.
func (c *Client) do(ctx context.Context, method, path, overrideToken string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token := overrideToken
	if token == "" {
		token = c.token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return &Error{Kind: KindUnknown, Status: resp.StatusCode, cause: err}
		}
	}
	return nil
}
