// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of Private VPN.
//
// Server-side services (files without the client_ prefix) sit between the HTTP
// handlers and the SQL repositories. Client-side services (client_*.go) sit
// between the terminal UI and the server adapter and keep the local session.
package service

import (
	"context"

	"github.com/MKhiriev/private-vpn/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type DeviceService interface {
	// RegisterDevice stores a new device for req.UserID with status off and a
	// freshly generated id.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// Dashboard lists the devices matching filter together with their stats.
	Dashboard(ctx context.Context, filter models.DeviceFilter) (models.Dashboard, error)

	// ToggleDevice flips the status of a device owned by userID.
	ToggleDevice(ctx context.Context, userID int64, deviceID string) (models.Device, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
