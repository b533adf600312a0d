// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("client services are not provided")

// humanizeError turns a service error into the banner shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable), isNetworkError(err):
		return app.MsgServerUnavailable
	case errors.Is(err, service.ErrTooManyRequests):
		return app.MsgTooManyRequests
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidEmailOrPassword
	case errors.Is(err, service.ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, store.ErrDeviceNotFound):
		return app.MsgDeviceNotFound
	}

	if ve := validationErrorOf(err); ve != nil {
		return ve.Message
	}
	return err.Error()
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}

func validationErrorOf(err error) *models.ValidationError {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// sessionRedirect returns the navigation to /login when err means the stored
// session is gone or was rejected by the server.
func sessionRedirect(err error) (tea.Cmd, bool) {
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return navigate(RouteLogin, loginNotice{text: app.MsgSessionExpired}), true
	case errors.Is(err, service.ErrSessionNotFound):
		return navigate(RouteLogin, nil), true
	}
	return nil, false
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
