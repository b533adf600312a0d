// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field names of the account and device forms. They match the JSON keys of
// the request bodies and the keys of models.FieldErrors.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldType            = "type"
	FieldESP32ID         = "esp32Id"
)

// Messages shown next to a failing field.
const (
	MsgNameRequired        = "Name is required"
	MsgEmailRequired       = "Email is required"
	MsgEmailInvalid        = "Email is invalid"
	MsgPasswordRequired    = "Password is required"
	MsgPasswordTooShort    = "Password must be at least 6 characters"
	MsgPasswordsDoNotMatch = "Passwords do not match"
	MsgDeviceNameRequired  = "Device name is required"
	MsgDeviceTypeRequired  = "Device type is required"
	MsgESP32IDRequired     = "ESP32 ID is required"
	MsgUnknownDeviceType   = "Unknown device type"
	MsgPleaseFillAllFields = "Please fill in all fields"
	MsgPleaseFixFormErrors = "Please correct the highlighted fields"
)

// MinPasswordLength is the shortest accepted registration password.
const MinPasswordLength = 6
