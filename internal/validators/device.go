// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/private-vpn/models"
)

// DeviceValidator validates device registration requests.
type DeviceValidator struct{}

// NewDeviceValidator constructs a DeviceValidator.
func NewDeviceValidator() Validator {
	return &DeviceValidator{}
}

// Validate supports models.RegisterDeviceRequest (value or pointer).
//
// Missing values produce the "Please fill in all fields" banner with a message
// per empty field. A type outside the enum produces a field error only.
func (v *DeviceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterDeviceRequest:
		return v.validateRegisterDeviceRequest(ctx, value, fields...)
	case *models.RegisterDeviceRequest:
		return v.validateRegisterDeviceRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DeviceValidator) validateRegisterDeviceRequest(ctx context.Context, req models.RegisterDeviceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType, FieldESP32ID}
	}

	missing := models.FieldErrors{}
	invalid := models.FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				missing.Add(FieldName, MsgDeviceNameRequired)
			}
		case FieldType:
			if req.Type == "" {
				missing.Add(FieldType, MsgDeviceTypeRequired)
			} else if !req.Type.IsValid() {
				invalid.Add(FieldType, MsgUnknownDeviceType)
			}
		case FieldESP32ID:
			if strings.TrimSpace(req.ESP32ID) == "" {
				missing.Add(FieldESP32ID, MsgESP32IDRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	if len(missing) > 0 {
		for field, msg := range invalid {
			missing.Add(field, msg)
		}
		return models.NewValidationError(MsgPleaseFillAllFields, missing)
	}
	if len(invalid) > 0 {
		return models.NewValidationError(MsgPleaseFixFormErrors, invalid)
	}

	return nil
}
