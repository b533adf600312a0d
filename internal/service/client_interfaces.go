// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/private-vpn/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration,
// authentication and the locally persisted session. The session consists of
// the "currentUser" record (user JSON) and the "authToken" record (bearer
// token) in the local record store.
type ClientAuthService interface {
	// Register validates req locally, creates the account on the server and
	// stores the returned user and token as the current session.
	// Validation failures are returned as *models.ValidationError and nothing
	// is sent to the server.
	Register(ctx context.Context, req models.RegisterRequest) (models.Session, error)

	// Login authenticates against the server and stores the session on
	// success. Any credential mismatch yields ErrInvalidCredentials and leaves
	// the stored session unchanged.
	Login(ctx context.Context, req models.LoginRequest) (models.Session, error)

	// Logout deletes the stored user and token.
	Logout(ctx context.Context) error

	// CurrentSession reads the stored session. It returns ErrSessionNotFound
	// when no user is stored.
	CurrentSession(ctx context.Context) (models.Session, error)

	// RestoreSession is CurrentSession plus handing the stored token to the
	// server adapter. It is called once on start-up.
	RestoreSession(ctx context.Context) (models.Session, error)
}

// ClientDeviceService defines the client-side contract for managing the
// current user's devices. Every method requires a stored session and returns
// ErrSessionNotFound without one. When the server rejects the token the
// session is cleared and ErrSessionExpired is returned.
type ClientDeviceService interface {
	// RegisterDevice validates req locally and registers the device on the
	// server. The returned device carries the generated id.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// Dashboard fetches the device list and stats, optionally restricted to
	// the given types.
	Dashboard(ctx context.Context, types ...models.DeviceType) (models.Dashboard, error)

	// ToggleDevice flips the status of the device and returns the updated
	// record.
	ToggleDevice(ctx context.Context, deviceID string) (models.Device, error)
}

// ClientAppInfoService reports version information.
type ClientAppInfoService interface {
	// ServerVersion asks the server for its application version.
	ServerVersion(ctx context.Context) (string, error)

	// BuildInfo returns the metadata the client binary was built with.
	BuildInfo() models.AppBuildInfo
}
