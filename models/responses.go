// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dashboard is the device overview of a single user.
type Dashboard struct {
	Devices []Device    `json:"devices"`
	Stats   DeviceStats `json:"stats"`
}

// DeviceStats aggregates the device statuses shown under the dashboard.
type DeviceStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// NewDashboard builds a [Dashboard] for devices and computes its stats.
// A nil slice is normalised to an empty one so it encodes as [].
func NewDashboard(devices []Device) Dashboard {
	if devices == nil {
		devices = []Device{}
	}
	return Dashboard{Devices: devices, Stats: CountDeviceStats(devices)}
}

// CountDeviceStats counts total, active and inactive devices.
func CountDeviceStats(devices []Device) DeviceStats {
	stats := DeviceStats{Total: len(devices)}
	for _, d := range devices {
		if d.Status {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats
}

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Message is a human-readable summary shown as a banner.
	Message string `json:"message"`

	// Fields holds per-field messages for inline display.
	Fields FieldErrors `json:"fields,omitempty"`
}
