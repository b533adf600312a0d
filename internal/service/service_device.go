// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/internal/utils"
	"github.com/MKhiriev/private-vpn/models"
)

// maxDeviceIDAttempts bounds the retries on a generated id collision.
const maxDeviceIDAttempts = 3

type deviceIDGenerator interface {
	Generate() string
}

type deviceService struct {
	deviceRepository store.DeviceRepository
	idGenerator      deviceIDGenerator

	logger *logger.Logger
}

func NewDeviceService(deviceRepository store.DeviceRepository, logger *logger.Logger) DeviceService {
	return &deviceService{
		deviceRepository: deviceRepository,
		idGenerator:      utils.NewDeviceIDGenerator(),
		logger:           logger,
	}
}

func (d *deviceService) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	log := logger.FromContext(ctx)

	device := models.Device{
		Name:      strings.TrimSpace(req.Name),
		Type:      req.Type,
		ESP32ID:   strings.TrimSpace(req.ESP32ID),
		UserID:    req.UserID,
		Status:    false,
		CreatedAt: time.Now().UTC(),
	}

	for attempt := 1; attempt <= maxDeviceIDAttempts; attempt++ {
		device.ID = d.idGenerator.Generate()

		created, err := d.deviceRepository.CreateDevice(ctx, device)
		if errors.Is(err, store.ErrDeviceAlreadyExists) {
			log.Warn().Str("device_id", device.ID).Int("attempt", attempt).Msg("generated device id collides")
			continue
		}
		if err != nil {
			log.Err(err).Int64("user_id", req.UserID).Msg("device creation ended with error")
			return models.Device{}, fmt.Errorf("device creation ended with error: %w", err)
		}

		log.Info().Str("device_id", created.ID).Int64("user_id", created.UserID).Msg("device registered")
		return created, nil
	}

	return models.Device{}, ErrDeviceIDGenerationFailed
}

func (d *deviceService) Dashboard(ctx context.Context, filter models.DeviceFilter) (models.Dashboard, error) {
	devices, err := d.deviceRepository.ListUserDevices(ctx, filter)
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("listing devices failed: %w", err)
	}

	return models.NewDashboard(devices), nil
}

func (d *deviceService) ToggleDevice(ctx context.Context, userID int64, deviceID string) (models.Device, error) {
	device, err := d.deviceRepository.ToggleDeviceStatus(ctx, userID, deviceID)
	if err != nil {
		return models.Device{}, fmt.Errorf("toggling device %q failed: %w", deviceID, err)
	}

	logger.FromContext(ctx).Info().
		Str("device_id", device.ID).
		Bool("status", device.Status).
		Msg("device toggled")
	return device, nil
}
