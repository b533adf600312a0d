// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of the account registration form.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the payload of the login form.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterDeviceRequest is the payload of the device registration form.
// UserID is never read from the body; it is taken from the session.
type RegisterDeviceRequest struct {
	Name    string     `json:"name"`
	Type    DeviceType `json:"type"`
	ESP32ID string     `json:"esp32Id"`
	UserID  int64      `json:"-"`
}

// DeviceFilter narrows the device listing of a single user.
type DeviceFilter struct {
	// UserID is required; devices of other users are never returned.
	UserID int64

	// Types optionally restricts the listing to the given device types.
	Types []DeviceType
}
