// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent  = lipgloss.Color("#2563EB")
	muted   = lipgloss.Color("#64748B")
	danger  = lipgloss.Color("#DC2626")
	success = lipgloss.Color("#16A34A")

	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	accentStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(danger)
	fieldErrStyle = lipgloss.NewStyle().Foreground(danger)
	successStyle  = lipgloss.NewStyle().Bold(true).Foreground(success)
	onlineStyle   = lipgloss.NewStyle().Foreground(success)
	offlineStyle  = lipgloss.NewStyle().Foreground(muted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(44)
	selectedCardStyle = cardStyle.BorderForeground(accent)

	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
