package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/internal/utils"
	"github.com/MKhiriev/chiro-hub/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL, request
// timeout and the client's user agent.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("User-Agent", utils.UserAgent(appCfg.Version))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/register. A 409 answer is returned as [ErrConflict].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegistrationRequest) (models.RegisteredUser, error) {
	var user models.RegisteredUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&user).
		Post("/api/register")
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisteredUser{}, err
	}

	return user, nil
}

// TouchLogin implements [ServerAdapter] via POST /api/user-login.
func (h *httpServerAdapter) TouchLogin(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	var result models.LoginResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/user-login")
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	return result, nil
}

// Diagnostics implements [ServerAdapter] via GET /api/register-check.
func (h *httpServerAdapter) Diagnostics(ctx context.Context) (models.Diagnostics, error) {
	var diag models.Diagnostics

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&diag).
		Get("/api/register-check")
	if err != nil {
		return models.Diagnostics{}, fmt.Errorf("diagnostics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Diagnostics{}, err
	}

	return diag, nil
}

// PostLead implements [ServerAdapter] via POST /api/leads.
func (h *httpServerAdapter) PostLead(ctx context.Context, lead json.RawMessage) (models.LeadAck, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(lead)).
		Post("/api/leads")
	if err != nil {
		return models.LeadAck{}, fmt.Errorf("post lead request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LeadAck{}, err
	}

	var ack models.LeadAck
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.LeadAck{}, fmt.Errorf("decode lead ack: %w", err)
	}

	return ack, nil
}

// ListLeads implements [ServerAdapter] via GET /api/leads. Empty query
// fields are not sent.
func (h *httpServerAdapter) ListLeads(ctx context.Context, q models.LeadQuery) (models.LeadList, error) {
	req := h.client.R().SetContext(ctx)
	if q.Chiropractor != "" {
		req.SetQueryParam("chiropractor", q.Chiropractor)
	}
	if q.Since != "" {
		req.SetQueryParam("since", q.Since)
	}

	resp, err := req.Get("/api/leads")
	if err != nil {
		return models.LeadList{}, fmt.Errorf("list leads request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LeadList{}, err
	}

	var list models.LeadList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.LeadList{}, fmt.Errorf("decode lead list: %w", err)
	}

	return list, nil
}

// Version implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
