// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/validators"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerConfirm
)

// RegisterModel is the Bubble Tea model for the sign-up screen. Validation
// errors are shown next to the failing fields; a successful registration
// stores the session and opens device registration.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool

	banner string
	fields models.FieldErrors
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	m := &RegisterModel{ctx: ctx, auth: auth}
	m.reset()
	return m
}

func (m *RegisterModel) reset() {
	name := newInput("John Doe", 100)
	name.Focus()

	m.inputs = []textinput.Model{
		name,
		newInput("you@example.com", 254),
		newPasswordInput("at least 6 characters"),
		newPasswordInput("repeat password"),
	}
	m.focus = registerName
	m.submitting = false
	m.banner = ""
	m.fields = nil
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.fields = fieldErrorsOf(msg.err)
			m.banner = humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, navigate(RouteDeviceRegister, nil)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(RouteHome, nil)
		case key.Matches(msg, keys.toLogin):
			return m, navigate(RouteLogin, nil)
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
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
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Name:            strings.TrimSpace(m.inputs[registerName].Value()),
		Email:           strings.TrimSpace(m.inputs[registerEmail].Value()),
		Password:        m.inputs[registerPassword].Value(),
		ConfirmPassword: m.inputs[registerConfirm].Value(),
	}
}

func (m *RegisterModel) View() string {
	var b strings.Builder

	renderBanner(&b, m.banner)

	renderField(&b, "Full Name", m.inputs[registerName], m.fields[validators.FieldName])
	renderField(&b, "Email", m.inputs[registerEmail], m.fields[validators.FieldEmail])
	renderField(&b, "Password", m.inputs[registerPassword], m.fields[validators.FieldPassword])
	renderField(&b, "Confirm Password", m.inputs[registerConfirm], m.fields[validators.FieldConfirmPassword])

	if m.submitting {
		b.WriteString("[Creating account...]\n")
	} else {
		b.WriteString(accentStyle.Render("[Create Account]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Already have an account? Press ctrl+l to sign in"))

	return renderPage("CREATE ACCOUNT", b.String(), "enter: create │ tab: next field │ esc: back")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Register(ctx, req)
		return authResultMsg{session: session, err: err}
	}
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
