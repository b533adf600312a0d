// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/private-vpn/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks the router to open Page. Payload, when set, is delivered to
// the page right after it is opened.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type gateResultMsg struct {
	nav     NavigateTo
	session models.Session
	err     error
}

// loginNotice is shown above the login form, e.g. after the session expired.
type loginNotice struct {
	text string
}

type authResultMsg struct {
	session models.Session
	err     error
}

type deviceRegisteredMsg struct {
	device models.Device
	err    error
}

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	err       error
}

type deviceToggledMsg struct {
	device models.Device
	err    error
}

type loggedOutMsg struct {
	err error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
