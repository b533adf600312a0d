// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel lists the session user's devices as cards and toggles them.
// A toggle is applied to the in-memory list as soon as the server confirms
// it; the stats are recomputed from that list.
type DashboardModel struct {
	ctx     context.Context
	devices service.ClientDeviceService
	auth    service.ClientAuthService
	session models.Session

	dashboard models.Dashboard
	loading   bool
	toggling  bool
	spinner   spinner.Model

	idx int
	// filterIdx 0 shows all types; i > 0 selects models.DeviceTypes[i-1].
	filterIdx int
	banner    string
}

func NewDashboardModel(ctx context.Context, devices service.ClientDeviceService, auth service.ClientAuthService) *DashboardModel {
	return &DashboardModel{
		ctx:     ctx,
		devices: devices,
		auth:    auth,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *DashboardModel) SetSession(session models.Session) {
	m.session = session
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.banner = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.dashboard = msg.dashboard
		m.clampCursor()
		return m, nil
	case deviceToggledMsg:
		m.toggling = false
		if msg.err != nil {
			return m, m.handleError(msg.err)
		}
		m.applyToggle(msg.device)
		return m, nil
	case loggedOutMsg:
		if msg.err != nil {
			// currentUser is still stored; keep the dashboard open
			m.banner = app.MsgLogoutFailed + ": " + humanizeError(msg.err)
			return m, nil
		}
		m.reset()
		return m, navigate(RouteHome, nil)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.dashboard.Devices)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.toggle):
		if m.toggling || m.loading || len(m.dashboard.Devices) == 0 {
			return m, nil
		}
		m.toggling = true
		m.banner = ""
		return m, m.cmdToggle(m.dashboard.Devices[m.idx].ID)
	case key.Matches(msg, keys.filter):
		m.filterIdx = (m.filterIdx + 1) % (len(models.DeviceTypes) + 1)
		m.idx = 0
		return m, m.Init()
	case key.Matches(msg, keys.refresh):
		return m, m.Init()
	case key.Matches(msg, keys.newItem):
		return m, navigate(RouteDeviceRegister, nil)
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *DashboardModel) handleError(err error) tea.Cmd {
	if cmd, redirected := sessionRedirect(err); redirected {
		m.reset()
		return cmd
	}
	m.banner = humanizeError(err)
	return nil
}

// applyToggle replaces the toggled device in the list and recomputes stats.
func (m *DashboardModel) applyToggle(device models.Device) {
	for i := range m.dashboard.Devices {
		if m.dashboard.Devices[i].ID == device.ID {
			m.dashboard.Devices[i] = device
			break
		}
	}
	m.dashboard.Stats = models.CountDeviceStats(m.dashboard.Devices)
}

func (m *DashboardModel) clampCursor() {
	if m.idx >= len(m.dashboard.Devices) {
		m.idx = len(m.dashboard.Devices) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *DashboardModel) reset() {
	m.session = models.Session{}
	m.dashboard = models.Dashboard{}
	m.idx = 0
	m.filterIdx = 0
	m.banner = ""
	m.loading = false
	m.toggling = false
}

func (m *DashboardModel) filterTypes() []models.DeviceType {
	if m.filterIdx == 0 {
		return nil
	}
	return []models.DeviceType{models.DeviceTypes[m.filterIdx-1]}
}

func (m *DashboardModel) filterLabel() string {
	if m.filterIdx == 0 {
		return "All devices"
	}
	return models.DeviceTypes[m.filterIdx-1].Label()
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Welcome, " + m.session.User.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Manage and control your connected devices"))
	b.WriteString("\n\n")

	stats := m.dashboard.Stats
	b.WriteString(fmt.Sprintf("Total Devices: %d   Active: %s   Inactive: %s\n",
		stats.Total,
		onlineStyle.Render(fmt.Sprint(stats.Active)),
		offlineStyle.Render(fmt.Sprint(stats.Inactive)),
	))
	b.WriteString("Filter: " + m.filterLabel() + "\n\n")

	renderBanner(&b, m.banner)

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading devices...")
	case len(m.dashboard.Devices) == 0 && m.filterIdx == 0:
		b.WriteString(titleStyle.Render("No devices yet"))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Register your first ESP32 device to get started"))
		b.WriteString("\n")
		b.WriteString(accentStyle.Render("[Register Device]") + " press n")
	case len(m.dashboard.Devices) == 0:
		b.WriteString(mutedStyle.Render("No devices of this type"))
	default:
		cards := make([]string, 0, len(m.dashboard.Devices))
		for i, d := range m.dashboard.Devices {
			cards = append(cards, renderDeviceCard(d, i == m.idx))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
	}

	return renderPage("DASHBOARD", b.String(),
		"↑/↓: select │ enter/space: toggle │ f: filter │ n: add device │ r: refresh │ o: logout │ q: quit")
}

func renderDeviceCard(d models.Device, selected bool) string {
	status := offlineStyle.Render("● " + d.StatusLabel())
	if d.Status {
		status = onlineStyle.Render("● " + d.StatusLabel())
	}

	action := "[Turn On]"
	if d.Status {
		action = "[Turn Off]"
	}

	body := fmt.Sprintf("%s %s\n%s\n%s\nID: %s\n%s",
		d.Type.Icon(), titleStyle.Render(d.Name),
		mutedStyle.Render(d.Type.Label()),
		status,
		truncateID(d.ID),
		action,
	)

	if selected {
		return selectedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	devices := m.devices
	types := m.filterTypes()

	return func() tea.Msg {
		dashboard, err := devices.Dashboard(ctx, types...)
		return dashboardLoadedMsg{dashboard: dashboard, err: err}
	}
}

func (m *DashboardModel) cmdToggle(deviceID string) tea.Cmd {
	ctx := m.ctx
	devices := m.devices

	return func() tea.Msg {
		device, err := devices.ToggleDevice(ctx, deviceID)
		return deviceToggledMsg{device: device, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loggedOutMsg{err: auth.Logout(ctx)}
	}
}
