// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeModel_Navigation(t *testing.T) {
	m := NewHomeModel()

	_, cmd := m.Update(keyPress("enter"))
	expectNavigate(t, cmd, RouteLogin)

	m.Update(keyPress("right"))
	_, cmd = m.Update(keyPress("enter"))
	expectNavigate(t, cmd, RouteRegister)

	_, cmd = m.Update(keyPress("l"))
	expectNavigate(t, cmd, RouteLogin)

	_, cmd = m.Update(keyPress("g"))
	expectNavigate(t, cmd, RouteRegister)
}

func TestHomeModel_View(t *testing.T) {
	view := NewHomeModel().View()

	for _, want := range []string{
		"Control Your Home Appliances",
		"Secure Access", "Private Network", "ESP32 Powered", "Remote Control",
		"How It Works", "Create Your Account", "Register Your ESP32 Device", "Control Remotely",
		"Login", "Get Started",
	} {
		assert.Contains(t, view, want)
	}
}
