// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/internal/utils"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	dupEmail := fmt.Errorf("%w: %w", service.ErrEmailAlreadyRegistered,
		&models.ValidationError{Fields: models.FieldErrors{"email": "Email already registered"}})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"duplicate email wins over validation", dupEmail, http.StatusConflict},
		{"store duplicate email", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"validation", &models.ValidationError{Message: "Please fill in all fields"}, http.StatusBadRequest},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"empty body", utils.ErrEmptyBody, http.StatusBadRequest},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"wrapped token error", fmt.Errorf("parse: %w", service.ErrTokenIsExpiredOrInvalid), http.StatusUnauthorized},
		{"unknown owner", store.ErrUnknownDeviceOwner, http.StatusUnauthorized},
		{"device not found", store.ErrDeviceNotFound, http.StatusNotFound},
		{"route", ErrRouteNotFound, http.StatusNotFound},
		{"rate limit", ErrTooManyRequests, http.StatusTooManyRequests},
		{"query", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestWriteError_HidesInternals(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, fmt.Errorf("%w: pq: connection refused", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotContains(t, rr.Body.String(), "pq:")
	assert.Equal(t, "internal server error", decodeErrorResponse(t, rr).Message)
}

func TestWriteError_ValidationBannerAndFields(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", nil)

	writeError(rr, req, &models.ValidationError{
		Message: "Please fix the errors below",
		Fields:  models.FieldErrors{"confirmPassword": "Passwords do not match"},
	})

	body := decodeErrorResponse(t, rr)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Please fix the errors below", body.Message)
	assert.Equal(t, "Passwords do not match", body.Fields["confirmPassword"])
}
