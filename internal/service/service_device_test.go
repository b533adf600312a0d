// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.DeviceRepository
// ─────────────────────────────────────────────

type mockDeviceRepository struct {
	createFn func(ctx context.Context, device models.Device) (models.Device, error)
	listFn   func(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error)
	toggleFn func(ctx context.Context, userID int64, deviceID string) (models.Device, error)
}

func (m *mockDeviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	if m.createFn != nil {
		return m.createFn(ctx, device)
	}
	return device, nil
}

func (m *mockDeviceRepository) ListUserDevices(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockDeviceRepository) ToggleDeviceStatus(ctx context.Context, userID int64, deviceID string) (models.Device, error) {
	if m.toggleFn != nil {
		return m.toggleFn(ctx, userID, deviceID)
	}
	return models.Device{}, store.ErrDeviceNotFound
}

type sequenceIDGenerator struct {
	ids  []string
	next int
}

func (g *sequenceIDGenerator) Generate() string {
	id := g.ids[g.next%len(g.ids)]
	g.next++
	return id
}

var deviceIDPattern = regexp.MustCompile(`^ESP32-\d+-[A-Z0-9]+$`)

// ─────────────────────────────────────────────
// RegisterDevice
// ─────────────────────────────────────────────

func TestRegisterDevice_Success(t *testing.T) {
	var stored models.Device
	repo := &mockDeviceRepository{
		createFn: func(ctx context.Context, device models.Device) (models.Device, error) {
			stored = device
			return device, nil
		},
	}
	svc := NewDeviceService(repo, logger.Nop())

	device, err := svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{
		Name:    "  Living Room Light ",
		Type:    models.DeviceTypeLight,
		ESP32ID: "AA:BB:CC:DD:EE:FF",
		UserID:  5,
	})

	require.NoError(t, err)
	assert.Regexp(t, deviceIDPattern, device.ID)
	assert.Equal(t, "Living Room Light", device.Name)
	assert.Equal(t, int64(5), device.UserID)
	assert.False(t, device.Status)
	assert.False(t, device.CreatedAt.IsZero())
	assert.Equal(t, stored, device)
}

func TestRegisterDevice_RetriesOnCollision(t *testing.T) {
	var attempts []string
	repo := &mockDeviceRepository{
		createFn: func(ctx context.Context, device models.Device) (models.Device, error) {
			attempts = append(attempts, device.ID)
			if device.ID == "ESP32-1-TAKEN" {
				return models.Device{}, store.ErrDeviceAlreadyExists
			}
			return device, nil
		},
	}
	svc := NewDeviceService(repo, logger.Nop()).(*deviceService)
	svc.idGenerator = &sequenceIDGenerator{ids: []string{"ESP32-1-TAKEN", "ESP32-2-FREE"}}

	device, err := svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, "ESP32-2-FREE", device.ID)
	assert.Equal(t, []string{"ESP32-1-TAKEN", "ESP32-2-FREE"}, attempts)
}

func TestRegisterDevice_GivesUpAfterRepeatedCollisions(t *testing.T) {
	calls := 0
	repo := &mockDeviceRepository{
		createFn: func(ctx context.Context, device models.Device) (models.Device, error) {
			calls++
			return models.Device{}, store.ErrDeviceAlreadyExists
		},
	}
	svc := NewDeviceService(repo, logger.Nop())

	_, err := svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{UserID: 1})

	assert.ErrorIs(t, err, ErrDeviceIDGenerationFailed)
	assert.Equal(t, maxDeviceIDAttempts, calls)
}

func TestRegisterDevice_RepositoryError(t *testing.T) {
	repo := &mockDeviceRepository{
		createFn: func(ctx context.Context, device models.Device) (models.Device, error) {
			return models.Device{}, store.ErrUnknownDeviceOwner
		},
	}
	svc := NewDeviceService(repo, logger.Nop())

	_, err := svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{UserID: 99})
	assert.ErrorIs(t, err, store.ErrUnknownDeviceOwner)
}

// ─────────────────────────────────────────────
// Dashboard
// ─────────────────────────────────────────────

func TestDashboard_Stats(t *testing.T) {
	var gotFilter models.DeviceFilter
	repo := &mockDeviceRepository{
		listFn: func(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
			gotFilter = filter
			return []models.Device{
				{ID: "a", Status: true},
				{ID: "b", Status: false},
				{ID: "c", Status: true},
			}, nil
		},
	}
	svc := NewDeviceService(repo, logger.Nop())

	filter := models.DeviceFilter{UserID: 3, Types: []models.DeviceType{models.DeviceTypeFan}}
	dashboard, err := svc.Dashboard(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, filter, gotFilter)
	assert.Len(t, dashboard.Devices, 3)
	assert.Equal(t, models.DeviceStats{Total: 3, Active: 2, Inactive: 1}, dashboard.Stats)
}

func TestDashboard_Empty(t *testing.T) {
	svc := NewDeviceService(&mockDeviceRepository{}, logger.Nop())

	dashboard, err := svc.Dashboard(context.Background(), models.DeviceFilter{UserID: 3})

	require.NoError(t, err)
	assert.NotNil(t, dashboard.Devices)
	assert.Equal(t, 0, dashboard.Stats.Total)
}

func TestDashboard_RepositoryError(t *testing.T) {
	dbErr := errors.New("timeout")
	svc := NewDeviceService(&mockDeviceRepository{
		listFn: func(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
			return nil, dbErr
		},
	}, logger.Nop())

	_, err := svc.Dashboard(context.Background(), models.DeviceFilter{UserID: 3})
	assert.ErrorIs(t, err, dbErr)
}

// ─────────────────────────────────────────────
// ToggleDevice
// ─────────────────────────────────────────────

func TestToggleDevice_DoubleToggleRestoresStatus(t *testing.T) {
	status := false
	repo := &mockDeviceRepository{
		toggleFn: func(ctx context.Context, userID int64, deviceID string) (models.Device, error) {
			status = !status
			return models.Device{ID: deviceID, UserID: userID, Status: status}, nil
		},
	}
	svc := NewDeviceService(repo, logger.Nop())
	ctx := context.Background()

	first, err := svc.ToggleDevice(ctx, 1, "ESP32-1-A")
	require.NoError(t, err)
	assert.True(t, first.Status)

	second, err := svc.ToggleDevice(ctx, 1, "ESP32-1-A")
	require.NoError(t, err)
	assert.False(t, second.Status)
}

func TestToggleDevice_NotFound(t *testing.T) {
	svc := NewDeviceService(&mockDeviceRepository{}, logger.Nop())

	_, err := svc.ToggleDevice(context.Background(), 1, "ESP32-1-A")
	assert.ErrorIs(t, err, store.ErrDeviceNotFound)
}
