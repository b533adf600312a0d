// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// Form screens only bind non-printable keys so typing is never intercepted.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	login    key.Binding
	register key.Binding
	toLogin  key.Binding
	toSignUp key.Binding
	skip     key.Binding
	toggle   key.Binding
	filter   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	logout   key.Binding
	copy     key.Binding
	another  key.Binding
	finish   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q")),
	login:    key.NewBinding(key.WithKeys("l")),
	register: key.NewBinding(key.WithKeys("g")),
	toLogin:  key.NewBinding(key.WithKeys("ctrl+l")),
	toSignUp: key.NewBinding(key.WithKeys("ctrl+r")),
	skip:     key.NewBinding(key.WithKeys("ctrl+s")),
	toggle:   key.NewBinding(key.WithKeys("enter", " ")),
	filter:   key.NewBinding(key.WithKeys("f")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	logout:   key.NewBinding(key.WithKeys("o")),
	copy:     key.NewBinding(key.WithKeys("c")),
	another:  key.NewBinding(key.WithKeys("a")),
	finish:   key.NewBinding(key.WithKeys("enter", "d")),
}
