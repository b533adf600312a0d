// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Device is a simulated ESP32-driven appliance registered by a user.
type Device struct {
	// ID is the generated device identifier, ESP32-<unix millis>-<token>.
	ID string `json:"id"`

	// Name is the user-given label, e.g. "Living Room Light".
	Name string `json:"name"`

	// Type selects the icon and label used by the dashboard.
	Type DeviceType `json:"type"`

	// ESP32ID is the MAC address of the board as typed by the user.
	ESP32ID string `json:"esp32Id"`

	// UserID references the owning user.
	UserID int64 `json:"userId,string"`

	// Status reports whether the device is switched on.
	Status bool `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Device model.
func (d Device) TableName() string {
	return "devices"
}

// StatusLabel returns the dashboard wording for the device status.
func (d Device) StatusLabel() string {
	if d.Status {
		return "Online"
	}
	return "Offline"
}
