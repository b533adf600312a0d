// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Routes of the client screens.
const (
	RouteHome           = "/"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteDeviceRegister = "/devices/register"
	RouteDashboard      = "/dashboard"
)

var protectedRoutes = map[string]bool{
	RouteDeviceRegister: true,
	RouteDashboard:      true,
}

// sessionPage is implemented by protected screens. The router hands them the
// stored session before opening them.
type sessionPage interface {
	tea.Model
	SetSession(session models.Session)
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages and gates protected routes
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	appInfo service.ClientAppInfoService

	pages        map[string]tea.Model
	current      tea.Model
	currentRoute string

	showBuildInfo bool
	serverVersion string
	versionErr    error
}

// NewRootModel registers all pages and opens startPage. startPage must not be
// a protected route.
func NewRootModel(ctx context.Context, services *service.ClientServices, pages map[string]tea.Model, startPage string) RootModel {
	return RootModel{
		ctx:          ctx,
		auth:         services.AuthService,
		appInfo:      services.AppInfoService,
		pages:        pages,
		current:      pages[startPage],
		currentRoute: startPage,
	}
}

// CurrentRoute returns the route of the active page.
func (r RootModel) CurrentRoute() string {
	return r.currentRoute
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.currentRoute == RouteHome {
				r.showBuildInfo = !r.showBuildInfo
				if r.showBuildInfo && r.serverVersion == "" {
					return r, r.cmdServerVersion()
				}
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		if protectedRoutes[msg.Page] {
			return r, r.cmdGate(msg)
		}
		return r.open(msg.Page, msg.Payload)
	case gateResultMsg:
		if msg.err != nil {
			var notice tea.Msg
			if !errors.Is(msg.err, service.ErrSessionNotFound) {
				notice = loginNotice{text: humanizeError(msg.err)}
			}
			return r.open(RouteLogin, notice)
		}
		if page, ok := r.pages[msg.nav.Page].(sessionPage); ok {
			page.SetSession(msg.session)
		}
		return r.open(msg.nav.Page, msg.nav.Payload)
	case serverVersionMsg:
		r.serverVersion = msg.version
		r.versionErr = msg.err
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.appInfo.BuildInfo(), r.serverVersion, r.versionErr)
	}
	if r.current == nil {
		return renderPage("Private VPN", "", "")
	}
	return r.current.View()
}

func (r RootModel) open(page string, payload tea.Msg) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentRoute = page

	if payload != nil {
		return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
	}
	return r, next.Init()
}

// cmdGate reads the stored session; the target page is opened only once the
// session is confirmed.
func (r RootModel) cmdGate(nav NavigateTo) tea.Cmd {
	ctx := r.ctx
	auth := r.auth

	return func() tea.Msg {
		session, err := auth.CurrentSession(ctx)
		return gateResultMsg{nav: nav, session: session, err: err}
	}
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	appInfo := r.appInfo

	return func() tea.Msg {
		version, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}
