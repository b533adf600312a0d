// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/validators"
	"github.com/MKhiriev/private-vpn/models"
)

// DeviceServiceWrapper defines middleware composition for DeviceService.
// Implementations wrap an existing DeviceService to add behavior such as
// logging or validating.
type DeviceServiceWrapper interface {
	Wrap(DeviceService) DeviceService // returns a decorated DeviceService applying additional behavior
}

// DeviceValidationService checks the caller and the form before delegating to
// the wrapped DeviceService.
type DeviceValidationService struct {
	inner     DeviceService
	validator validators.Validator
}

func NewDeviceValidationService() DeviceServiceWrapper {
	return &DeviceValidationService{
		validator: validators.NewDeviceValidator(),
	}
}

func (v *DeviceValidationService) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	if req.UserID <= 0 {
		return models.Device{}, ErrNoUserIDProvided
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Device{}, err
	}

	return v.inner.RegisterDevice(ctx, req)
}

func (v *DeviceValidationService) Dashboard(ctx context.Context, filter models.DeviceFilter) (models.Dashboard, error) {
	if filter.UserID <= 0 {
		return models.Dashboard{}, ErrNoUserIDProvided
	}

	for _, t := range filter.Types {
		if !t.IsValid() {
			return models.Dashboard{}, models.NewValidationError(validators.MsgPleaseFixFormErrors,
				models.FieldErrors{validators.FieldType: validators.MsgUnknownDeviceType})
		}
	}

	return v.inner.Dashboard(ctx, filter)
}

func (v *DeviceValidationService) ToggleDevice(ctx context.Context, userID int64, deviceID string) (models.Device, error) {
	if userID <= 0 {
		return models.Device{}, ErrNoUserIDProvided
	}
	if strings.TrimSpace(deviceID) == "" {
		return models.Device{}, ErrInvalidDataProvided
	}

	return v.inner.ToggleDevice(ctx, userID, deviceID)
}

func (v *DeviceValidationService) Wrap(wrapper DeviceService) DeviceService {
	v.inner = wrapper
	return v
}
