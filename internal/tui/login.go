// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/validators"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async login command on
// submission. On success it navigates to the dashboard; any credential
// mismatch shows the generic "Invalid email or password" banner.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool

	notice string
	banner string
	fields models.FieldErrors
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	m := &LoginModel{ctx: ctx, auth: auth}
	m.reset()
	return m
}

func (m *LoginModel) reset() {
	email := newInput("you@example.com", 254)
	email.Focus()

	m.inputs = []textinput.Model{email, newPasswordInput("password")}
	m.focus = loginEmail
	m.submitting = false
	m.banner = ""
	m.fields = nil
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginNotice:
		m.notice = msg.text
		return m, nil
	case authResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.showError(msg.err)
			return m, nil
		}
		m.reset()
		m.notice = ""
		return m, navigate(RouteDashboard, nil)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.notice = ""
			return m, navigate(RouteHome, nil)
		case key.Matches(msg, keys.toSignUp):
			m.notice = ""
			return m, navigate(RouteRegister, nil)
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
			return m, m.cmdLogin(models.LoginRequest{
				Email:    strings.TrimSpace(m.inputs[loginEmail].Value()),
				Password: m.inputs[loginPassword].Value(),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) showError(err error) {
	if errors.Is(err, service.ErrInvalidCredentials) {
		m.banner = app.MsgInvalidEmailOrPassword
		return
	}
	m.fields = fieldErrorsOf(err)
	m.banner = humanizeError(err)
}

func (m *LoginModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(mutedStyle.Render(m.notice))
		b.WriteString("\n\n")
	}
	renderBanner(&b, m.banner)

	renderField(&b, "Email", m.inputs[loginEmail], m.fields[validators.FieldEmail])
	renderField(&b, "Password", m.inputs[loginPassword], m.fields[validators.FieldPassword])

	if m.submitting {
		b.WriteString("[Signing in...]\n")
	} else {
		b.WriteString(accentStyle.Render("[Sign In]"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Don't have an account? Press ctrl+r to sign up"))

	return renderPage("LOGIN", b.String(), "enter: sign in │ tab: next field │ esc: back")
}

func (m *LoginModel) cmdLogin(req models.LoginRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		return authResultMsg{session: session, err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
