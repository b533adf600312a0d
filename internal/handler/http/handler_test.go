// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/mock"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validToken = "valid-token"

type testEnv struct {
	handler *Handler
	router  http.Handler

	auth    *mock.MockAuthService
	devices *mock.MockDeviceService
	appInfo *mock.MockAppInfoService
}

func newTestEnv(t *testing.T, cfg config.Server) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:    mock.NewMockAuthService(ctrl),
		devices: mock.NewMockDeviceService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	env.handler = NewHandler(&service.Services{
		AuthService:    env.auth,
		DeviceService:  env.devices,
		AppInfoService: env.appInfo,
	}, cfg, logger.Nop())
	env.router = env.handler.Init()

	env.auth.EXPECT().ParseToken(gomock.Any(), validToken).
		Return(models.Token{UserID: 7}, nil).AnyTimes()

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + validToken}
}

func decodeErrorResponse(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.Nil(t, h.limiter, "zero rate limit disables limiting")

	h = NewHandler(svcs, config.Server{RateLimit: 5, RateBurst: 10}, log)
	assert.NotNil(t, h.limiter)
}

func TestRoutes_UnsupportedMethodIs404(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/user/register"},
		{http.MethodDelete, "/api/devices"},
		{http.MethodGet, "/api/devices/ESP32-1-A/toggle"},
		{http.MethodPost, "/api/version"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := env.do(t, tt.method, tt.path, nil, nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestRoutes_UnknownPathIs404(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr := env.do(t, http.MethodGet, "/api/unknown", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/user"},
		{http.MethodPost, "/api/devices"},
		{http.MethodGet, "/api/devices"},
		{http.MethodPost, "/api/devices/ESP32-1-A/toggle"},
	} {
		rr := env.do(t, route.method, route.path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, route.path)
	}
}

func TestGetServerVersion(t *testing.T) {
	env := newTestEnv(t, config.Server{})
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := env.do(t, http.MethodGet, "/api/version", nil, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.3", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}

func TestLandingPage(t *testing.T) {
	env := newTestEnv(t, config.Server{})

	rr := env.do(t, http.MethodGet, "/", nil, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	page := rr.Body.String()
	for _, want := range []string{
		"Why Choose Private VPN?",
		"Secure Access", "Private Network", "ESP32 Powered", "Remote Control",
		"How It Works",
		"Create Your Account", "Register Your ESP32 Device", "Control Remotely",
		`href="/login"`, `href="/register"`,
	} {
		assert.Contains(t, page, want)
	}
	assert.Contains(t, page, "Securely &amp; Remotely")
}
