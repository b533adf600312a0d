// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/private-vpn/internal/mock"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClient struct {
	services *service.ClientServices

	auth    *mock.MockClientAuthService
	devices *mock.MockClientDeviceService
	appInfo *mock.MockClientAppInfoService
}

func newTestClient(t *testing.T) *testClient {
	t.Helper()
	ctrl := gomock.NewController(t)

	c := &testClient{
		auth:    mock.NewMockClientAuthService(ctrl),
		devices: mock.NewMockClientDeviceService(ctrl),
		appInfo: mock.NewMockClientAppInfoService(ctrl),
	}
	c.services = &service.ClientServices{
		AuthService:    c.auth,
		DeviceService:  c.devices,
		AppInfoService: c.appInfo,
	}
	return c
}

func (c *testClient) root(start string) RootModel {
	ctx := context.Background()
	return NewRootModel(ctx, c.services, newPages(ctx, c.services), start)
}

var alice = models.Session{
	User:  models.User{UserID: 1, Name: "Alice", Email: "alice@example.com"},
	Token: "jwt",
}

// keyPress builds the key message bubbletea produces for s.
func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// run executes cmd and returns its message; it fails the test on a nil cmd.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	return cmd()
}

// expectNavigate runs cmd and asserts it navigates to page.
func expectNavigate(t *testing.T, cmd tea.Cmd, page string) NavigateTo {
	t.Helper()
	nav, ok := run(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, page, nav.Page)
	return nav
}
