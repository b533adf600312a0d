// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/private-vpn/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID assigned.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks a user up by exact, case-sensitive email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// DeviceRepository persists registered ESP32 devices.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device models.Device) (models.Device, error)
	// ListUserDevices returns the devices of filter.UserID in registration
	// order, optionally narrowed to filter.Types.
	ListUserDevices(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error)
	// ToggleDeviceStatus flips the status of one device owned by userID in
	// a single statement and returns the updated row.
	ToggleDeviceStatus(ctx context.Context, userID int64, deviceID string) (models.Device, error)
}

// LocalRecordStore is the client-side key to JSON document store.
type LocalRecordStore interface {
	// Read decodes the value stored under key into dst. found is false when
	// the key is absent or its stored JSON is malformed.
	Read(ctx context.Context, key string, dst any) (found bool, err error)
	// Write replaces the value stored under key with the JSON encoding of value.
	Write(ctx context.Context, key string, value any) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
