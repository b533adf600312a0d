// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the terminal client to talk
// to the Private VPN server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Validation
// failures additionally carry a *models.ValidationError reachable with
// [errors.As].
package adapter

import (
	"context"

	"github.com/MKhiriev/private-vpn/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Private VPN
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the bearer token from the
	// response is stored via SetToken and the created user is returned.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates by email and password and stores the returned
	// bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CurrentUser returns the user the stored token belongs to.
	CurrentUser(ctx context.Context) (models.User, error)

	// RegisterDevice registers a device for the current user.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// Dashboard lists the current user's devices, optionally restricted to
	// the given types, together with their stats.
	Dashboard(ctx context.Context, types ...models.DeviceType) (models.Dashboard, error)

	// ToggleDevice flips the status of one of the current user's devices and
	// returns the updated device.
	ToggleDevice(ctx context.Context, deviceID string) (models.Device, error)

	// Version returns the server application version.
	Version(ctx context.Context) (string, error)
}
