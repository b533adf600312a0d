// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal client screens of Private VPN.
//
// Every screen is a Bubble Tea model registered in [RootModel] under its route
// ("/", "/login", "/register", "/devices/register", "/dashboard"). Screens
// switch by emitting [NavigateTo]; the router refuses protected routes without
// a stored session and opens "/login" instead.
package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger}, nil
}

// Run opens the home screen and blocks until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services, newPages(ctx, t.services), RouteHome)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok {
		t.logger.Info().Str("route", result.CurrentRoute()).Msg("terminal UI closed")
	}
	return nil
}

func newPages(ctx context.Context, services *service.ClientServices) map[string]tea.Model {
	return map[string]tea.Model{
		RouteHome:           NewHomeModel(),
		RouteLogin:          NewLoginModel(ctx, services.AuthService),
		RouteRegister:       NewRegisterModel(ctx, services.AuthService),
		RouteDeviceRegister: NewDeviceRegisterModel(ctx, services.DeviceService),
		RouteDashboard:      NewDashboardModel(ctx, services.DeviceService, services.AuthService),
	}
}
