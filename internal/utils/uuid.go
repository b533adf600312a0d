// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers, used as trace ids.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// deviceTokenLength is the length of the random part of a device id.
const deviceTokenLength = 13

// DeviceIDGenerator produces device ids of the form
// ESP32-<unix millis>-<13 uppercase alphanumerics>.
type DeviceIDGenerator struct {
	now func() time.Time
}

func NewDeviceIDGenerator() *DeviceIDGenerator {
	return &DeviceIDGenerator{now: time.Now}
}

func (g *DeviceIDGenerator) Generate() string {
	return FormatDeviceID(g.now(), randomDeviceToken())
}

// FormatDeviceID joins the parts of a device id and uppercases the result.
func FormatDeviceID(at time.Time, token string) string {
	return strings.ToUpper("ESP32-" + strconv.FormatInt(at.UnixMilli(), 10) + "-" + token)
}

// randomDeviceToken draws the token from the hex digits of a random (v4) UUID.
func randomDeviceToken() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:deviceTokenLength]
}
