// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/private-vpn/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"

	// maxShownIDLength is how much of a device id a dashboard card shows.
	maxShownIDLength = 20
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// renderField draws a labelled input and, below it, the field's error.
func renderField(b *strings.Builder, label string, input textinput.Model, fieldErr string) {
	b.WriteString(label)
	b.WriteString("\n")
	b.WriteString(input.View())
	b.WriteString("\n")
	if fieldErr != "" {
		b.WriteString(fieldErrStyle.Render(fieldErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func renderBanner(b *strings.Builder, banner string) {
	if banner == "" {
		return
	}
	b.WriteString(errorStyle.Render(banner))
	b.WriteString("\n\n")
}

func newInput(placeholder string, charLimit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 40
	return in
}

func newPasswordInput(placeholder string) textinput.Model {
	in := newInput(placeholder, 256)
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	return in
}

// truncateID shows at most maxShownIDLength runes of a device id followed by
// an ellipsis, whatever the id length.
func truncateID(id string) string {
	runes := []rune(id)
	if len(runes) > maxShownIDLength {
		runes = runes[:maxShownIDLength]
	}
	return string(runes) + "..."
}

func fieldErrorsOf(err error) models.FieldErrors {
	if ve := validationErrorOf(err); ve != nil {
		return ve.Fields
	}
	return nil
}
