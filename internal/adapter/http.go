// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/utils"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It validates adapterCfg.HTTPAddress and configures the underlying HTTP client
// with the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if err := validateAddress(adapterCfg.HTTPAddress); err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(strings.TrimSpace(adapterCfg.HTTPAddress), adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func validateAddress(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}

	return nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the form to
// POST /api/user/register and stores the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var created models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if err = h.storeBearer(resp); err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	return created, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login and stores the bearer token on success.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var found models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&found).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	if err = h.storeBearer(resp); err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	return found, nil
}

// CurrentUser implements [ServerAdapter] via GET /api/user.
func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/api/user")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// RegisterDevice implements [ServerAdapter] via POST /api/devices.
func (h *httpServerAdapter) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	var device models.Device

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&device).
		Post("/api/devices")
	if err != nil {
		return models.Device{}, fmt.Errorf("register device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Device{}, err
	}

	return device, nil
}

// Dashboard implements [ServerAdapter] via GET /api/devices. Every type is
// sent as a separate "type" query parameter.
func (h *httpServerAdapter) Dashboard(ctx context.Context, types ...models.DeviceType) (models.Dashboard, error) {
	var dashboard models.Dashboard

	query := url.Values{}
	for _, t := range types {
		query.Add("type", string(t))
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&dashboard).
		Get("/api/devices")
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dashboard{}, err
	}

	if dashboard.Devices == nil {
		dashboard.Devices = []models.Device{}
	}
	return dashboard, nil
}

// ToggleDevice implements [ServerAdapter] via
// POST /api/devices/{deviceID}/toggle.
func (h *httpServerAdapter) ToggleDevice(ctx context.Context, deviceID string) (models.Device, error) {
	var device models.Device

	resp, err := h.authedRequest(ctx).
		SetPathParam("deviceID", deviceID).
		SetResult(&device).
		Post("/api/devices/{deviceID}/toggle")
	if err != nil {
		return models.Device{}, fmt.Errorf("toggle device request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Device{}, err
	}

	return device, nil
}

// Version implements [ServerAdapter] via GET /api/version. The body is plain
// text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) storeBearer(resp *resty.Response) error {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return err
	}

	h.SetToken(token)
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}
