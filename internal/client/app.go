// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/tui"
)

var errNilDependency = errors.New("client app: services and ui are required")

// ui is the part of the terminal UI the app drives.
type ui interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       ui
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNilDependency
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the stored session and runs the terminal UI until the user
// quits or the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.restoreSession(ctx)
	return a.ui.Run(ctx)
}

// restoreSession hands a stored token to the server adapter. A missing or
// unreadable session is not fatal: the protected screens redirect to login.
func (a *App) restoreSession(ctx context.Context) {
	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case err == nil:
		a.logger.Info().Int64("user_id", session.User.UserID).Msg("session restored")
	case errors.Is(err, service.ErrSessionNotFound):
		a.logger.Debug().Msg("no stored session")
	default:
		a.logger.Warn().Err(err).Msg("restore session")
	}
}
