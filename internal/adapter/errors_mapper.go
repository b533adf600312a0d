// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/private-vpn/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Otherwise it returns the
// sentinel for the status code. For 400 and 409 a JSON error body is decoded
// into a *models.ValidationError and joined to the sentinel so callers can
// show the per-field messages.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body, decoded := decodeErrorBody(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return withBody(ErrBadRequest, body, decoded)
	case http.StatusUnauthorized:
		return withBody(ErrUnauthorized, body, false)
	case http.StatusForbidden:
		return withBody(ErrForbidden, body, false)
	case http.StatusNotFound:
		return withBody(ErrNotFound, body, false)
	case http.StatusConflict:
		return withBody(ErrConflict, body, decoded)
	case http.StatusTooManyRequests:
		return withBody(ErrTooManyRequests, body, false)
	case http.StatusBadGateway:
		return withBody(ErrBadGateway, body, false)
	case http.StatusInternalServerError:
		return withBody(ErrInternalServerError, body, false)
	default:
		if body.Message == "" {
			body.Message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body.Message)
	}
}

// decodeErrorBody reads a models.ErrorResponse. A body that is not JSON is
// kept verbatim as the message and reported as not decoded.
func decodeErrorBody(raw []byte) (models.ErrorResponse, bool) {
	var body models.ErrorResponse
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return body, false
	}
	if err := json.Unmarshal([]byte(trimmed), &body); err != nil {
		return models.ErrorResponse{Message: trimmed}, false
	}
	return body, true
}

func withBody(sentinel error, body models.ErrorResponse, asValidation bool) error {
	if asValidation {
		if ve := models.NewValidationError(body.Message, body.Fields); ve != nil {
			return fmt.Errorf("%w: %w", sentinel, ve)
		}
	}
	if body.Message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, body.Message)
}
