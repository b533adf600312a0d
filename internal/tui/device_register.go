// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/validators"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	deviceFieldName = iota
	deviceFieldType
	deviceFieldESP32ID
	deviceFieldCount
)

// statusTTL is how long the "Copied!" indicator stays visible.
const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// DeviceRegisterModel registers an ESP32 device for the session user. After
// a successful registration it shows the generated id once, with copy,
// register another and go to dashboard actions.
type DeviceRegisterModel struct {
	ctx     context.Context
	devices service.ClientDeviceService
	session models.Session

	name    textinput.Model
	esp32ID textinput.Model
	// typeIdx indexes models.DeviceTypes; -1 means nothing selected.
	typeIdx int
	focus   int

	submitting bool
	banner     string
	fields     models.FieldErrors

	registered *models.Device
	status     string
}

func NewDeviceRegisterModel(ctx context.Context, devices service.ClientDeviceService) *DeviceRegisterModel {
	m := &DeviceRegisterModel{ctx: ctx, devices: devices}
	m.reset()
	return m
}

func (m *DeviceRegisterModel) SetSession(session models.Session) {
	m.session = session
}

func (m *DeviceRegisterModel) reset() {
	m.name = newInput("Living Room Light", 100)
	m.name.Focus()
	m.esp32ID = newInput("ESP32 chip id or MAC", 64)
	m.typeIdx = -1
	m.focus = deviceFieldName
	m.submitting = false
	m.banner = ""
	m.fields = nil
	m.registered = nil
	m.status = ""
}

func (m *DeviceRegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *DeviceRegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case deviceRegisteredMsg:
		m.submitting = false
		if msg.err != nil {
			if cmd, redirected := sessionRedirect(msg.err); redirected {
				return m, cmd
			}
			m.fields = fieldErrorsOf(msg.err)
			m.banner = humanizeError(msg.err)
			return m, nil
		}
		device := msg.device
		m.registered = &device
		m.banner = ""
		m.fields = nil
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = app.MsgClipboardUnavailable
		} else {
			m.status = app.MsgCopied
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.registered != nil {
			return m.updateSuccess(msg)
		}
		return m.updateForm(msg)
	}

	return m, m.updateFocusedInput(msg)
}

func (m *DeviceRegisterModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.skip):
		m.reset()
		return m, navigate(RouteDashboard, nil)
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % deviceFieldCount)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + deviceFieldCount) % deviceFieldCount)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		m.banner = ""
		m.fields = nil
		m.submitting = true
		return m, m.cmdRegister(m.request())
	}

	if m.focus == deviceFieldType {
		switch {
		case key.Matches(msg, keys.left):
			if m.typeIdx > 0 {
				m.typeIdx--
			} else {
				m.typeIdx = len(models.DeviceTypes) - 1
			}
		case key.Matches(msg, keys.right):
			m.typeIdx = (m.typeIdx + 1) % len(models.DeviceTypes)
		}
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

func (m *DeviceRegisterModel) updateSuccess(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard(m.registered.ID)
	case key.Matches(msg, keys.another):
		m.reset()
		return m, textinput.Blink
	case key.Matches(msg, keys.finish), key.Matches(msg, keys.esc):
		m.reset()
		return m, navigate(RouteDashboard, nil)
	}
	return m, nil
}

func (m *DeviceRegisterModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case deviceFieldName:
		m.name, cmd = m.name.Update(msg)
	case deviceFieldESP32ID:
		m.esp32ID, cmd = m.esp32ID.Update(msg)
	}
	return cmd
}

func (m *DeviceRegisterModel) setFocus(focus int) {
	m.name.Blur()
	m.esp32ID.Blur()
	m.focus = focus
	switch focus {
	case deviceFieldName:
		m.name.Focus()
	case deviceFieldESP32ID:
		m.esp32ID.Focus()
	}
}

func (m *DeviceRegisterModel) selectedType() models.DeviceType {
	if m.typeIdx < 0 || m.typeIdx >= len(models.DeviceTypes) {
		return ""
	}
	return models.DeviceTypes[m.typeIdx]
}

func (m *DeviceRegisterModel) request() models.RegisterDeviceRequest {
	return models.RegisterDeviceRequest{
		Name:    strings.TrimSpace(m.name.Value()),
		Type:    m.selectedType(),
		ESP32ID: strings.TrimSpace(m.esp32ID.Value()),
	}
}

func (m *DeviceRegisterModel) View() string {
	if m.registered != nil {
		return m.viewSuccess()
	}

	var b strings.Builder
	if m.session.User.Email != "" {
		b.WriteString(mutedStyle.Render("Signed in as " + m.session.User.Email))
		b.WriteString("\n\n")
	}
	renderBanner(&b, m.banner)

	renderField(&b, "Device Name", m.name, m.fields[validators.FieldName])

	b.WriteString("Device Type\n")
	typeLabel := "< Select device type >"
	if t := m.selectedType(); t != "" {
		typeLabel = "< " + t.Icon() + " " + t.Label() + " >"
	}
	if m.focus == deviceFieldType {
		b.WriteString(accentStyle.Render(typeLabel))
	} else {
		b.WriteString(typeLabel)
	}
	b.WriteString("\n")
	if msg := m.fields[validators.FieldType]; msg != "" {
		b.WriteString(fieldErrStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	renderField(&b, "ESP32 ID", m.esp32ID, m.fields[validators.FieldESP32ID])

	if m.submitting {
		b.WriteString("[Registering...]\n")
	} else {
		b.WriteString(accentStyle.Render("[Register Device]"))
		b.WriteString("   [Skip to Dashboard]\n")
	}

	return renderPage("REGISTER YOUR ESP32 DEVICE", b.String(),
		"enter: register │ tab: next field │ ←/→: device type │ ctrl+s: skip to dashboard")
}

func (m *DeviceRegisterModel) viewSuccess() string {
	var b strings.Builder
	d := m.registered

	b.WriteString(successStyle.Render("Device Registered Successfully!"))
	b.WriteString("\n\n")
	b.WriteString(d.Type.Icon() + " " + d.Name + " (" + d.Type.Label() + ")\n\n")
	b.WriteString("Your Device ID:\n")
	b.WriteString(accentStyle.Render(d.ID))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(successStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Use this ID to configure your ESP32 device."))

	return renderPage("REGISTER YOUR ESP32 DEVICE", b.String(),
		"c: copy id │ a: register another device │ enter: go to dashboard")
}

func (m *DeviceRegisterModel) cmdRegister(req models.RegisterDeviceRequest) tea.Cmd {
	ctx := m.ctx
	devices := m.devices

	return func() tea.Msg {
		device, err := devices.RegisterDevice(ctx, req)
		return deviceRegisteredMsg{device: device, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
