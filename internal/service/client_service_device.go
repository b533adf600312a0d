// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/internal/validators"
	"github.com/MKhiriev/private-vpn/models"
)

type clientDeviceService struct {
	session   *sessionKeeper
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientDeviceService(records store.LocalRecordStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientDeviceService {
	return &clientDeviceService{
		session:   &sessionKeeper{records: records, adapter: serverAdapter},
		adapter:   serverAdapter,
		validator: validators.NewDeviceValidator(),
		logger:    logger,
	}
}

func (d *clientDeviceService) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	session, err := d.session.load(ctx)
	if err != nil {
		return models.Device{}, err
	}

	if err = d.validator.Validate(ctx, req); err != nil {
		return models.Device{}, err
	}

	req.UserID = session.User.UserID
	device, err := d.adapter.RegisterDevice(ctx, req)
	if err != nil {
		return models.Device{}, d.handleError(ctx, "register device", err)
	}

	d.logger.Info().Str("device_id", device.ID).Msg("device registered")
	return device, nil
}

func (d *clientDeviceService) Dashboard(ctx context.Context, types ...models.DeviceType) (models.Dashboard, error) {
	if _, err := d.session.load(ctx); err != nil {
		return models.Dashboard{}, err
	}

	dashboard, err := d.adapter.Dashboard(ctx, types...)
	if err != nil {
		return models.Dashboard{}, d.handleError(ctx, "dashboard", err)
	}

	return dashboard, nil
}

func (d *clientDeviceService) ToggleDevice(ctx context.Context, deviceID string) (models.Device, error) {
	if _, err := d.session.load(ctx); err != nil {
		return models.Device{}, err
	}

	device, err := d.adapter.ToggleDevice(ctx, deviceID)
	if err != nil {
		return models.Device{}, d.handleError(ctx, "toggle device", err)
	}

	return device, nil
}

// handleError clears the session on 401 and maps everything else through
// mapAdapterError.
func (d *clientDeviceService) handleError(ctx context.Context, op string, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		d.logger.Warn().Err(err).Str("op", op).Msg("token rejected, clearing session")
		return d.session.expire(ctx, err)
	}

	d.logger.Err(err).Str("op", op).Msg("server request failed")
	return mapAdapterError(err)
}
