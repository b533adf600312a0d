// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the landing screen. It shows the product pitch and offers
// Login and Get Started.
type HomeModel struct {
	landing app.Landing
	items   []string
	idx     int
}

func NewHomeModel() *HomeModel {
	return &HomeModel{
		landing: app.LandingPage(),
		items:   []string{"Login", "Get Started"},
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up), key.Matches(keyMsg, keys.left):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down), key.Matches(keyMsg, keys.right):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.login):
		return m, navigate(RouteLogin, nil)
	case key.Matches(keyMsg, keys.register):
		return m, navigate(RouteRegister, nil)
	case key.Matches(keyMsg, keys.enter):
		if m.idx == 0 {
			return m, navigate(RouteLogin, nil)
		}
		return m, navigate(RouteRegister, nil)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *HomeModel) View() string {
	var b strings.Builder
	l := m.landing

	b.WriteString(l.Headline)
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(l.Subheadline))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(l.Pitch))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.idx {
			b.WriteString(accentStyle.Render("[ " + item + " ]"))
		} else {
			b.WriteString("  " + item + "  ")
		}
		b.WriteString("   ")
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render(l.FeaturesHead))
	b.WriteString("\n")
	for _, f := range l.Features {
		b.WriteString("  • ")
		b.WriteString(titleStyle.Render(f.Title))
		b.WriteString(": ")
		b.WriteString(f.Text)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(l.StepsHead))
	b.WriteString("\n")
	for i, s := range l.Steps {
		b.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, titleStyle.Render(s.Title), s.Text))
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(l.Footer))

	return renderPage(l.Product, b.String(), "enter: select │ l: login │ g: get started │ v: version │ q: quit")
}
