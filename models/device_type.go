// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceType enumerates the appliance kinds a device can be registered as.
type DeviceType string

const (
	DeviceTypeLight  DeviceType = "light"
	DeviceTypeFan    DeviceType = "fan"
	DeviceTypeAC     DeviceType = "ac"
	DeviceTypeHeater DeviceType = "heater"
	DeviceTypeDoor   DeviceType = "door"
	DeviceTypeCamera DeviceType = "camera"
	DeviceTypeOther  DeviceType = "other"
)

// DeviceTypes lists every supported device type in the order the
// registration form offers them.
var DeviceTypes = []DeviceType{
	DeviceTypeLight,
	DeviceTypeFan,
	DeviceTypeAC,
	DeviceTypeHeater,
	DeviceTypeDoor,
	DeviceTypeCamera,
	DeviceTypeOther,
}

// IsValid reports whether t is one of [DeviceTypes].
func (t DeviceType) IsValid() bool {
	for _, known := range DeviceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable name of the device type.
func (t DeviceType) Label() string {
	switch t {
	case DeviceTypeLight:
		return "Light"
	case DeviceTypeFan:
		return "Fan"
	case DeviceTypeAC:
		return "Air Conditioner"
	case DeviceTypeHeater:
		return "Heater"
	case DeviceTypeDoor:
		return "Smart Door Lock"
	case DeviceTypeCamera:
		return "Camera"
	default:
		return "Other"
	}
}

// Icon returns the short glyph drawn on a dashboard card.
func (t DeviceType) Icon() string {
	switch t {
	case DeviceTypeLight:
		return "[💡]"
	case DeviceTypeFan:
		return "[🌀]"
	case DeviceTypeAC:
		return "[❄]"
	case DeviceTypeHeater:
		return "[🔥]"
	case DeviceTypeDoor:
		return "[🔒]"
	case DeviceTypeCamera:
		return "[📷]"
	default:
		return "[▢]"
	}
}
