// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	logout   key.Binding
	newItem  key.Binding
	refresh  key.Binding
	copy     key.Binding
	approve  key.Binding
	reject   key.Binding
	status   key.Binding
	category key.Binding
	toggle   key.Binding
	edit     key.Binding
	role     key.Binding
	ideas    key.Binding
	goals    key.Binding
	users    key.Binding
	chat     key.Binding
	inbox    key.Binding
}

var keys = keyMap{
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	logout:   key.NewBinding(key.WithKeys("ctrl+o")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	copy:     key.NewBinding(key.WithKeys("c")),
	approve:  key.NewBinding(key.WithKeys("a")),
	reject:   key.NewBinding(key.WithKeys("x")),
	status:   key.NewBinding(key.WithKeys("s")),
	category: key.NewBinding(key.WithKeys("g")),
	toggle:   key.NewBinding(key.WithKeys("t")),
	edit:     key.NewBinding(key.WithKeys("e")),
	role:     key.NewBinding(key.WithKeys("p")),
	ideas:    key.NewBinding(key.WithKeys("i")),
	goals:    key.NewBinding(key.WithKeys("m")),
	users:    key.NewBinding(key.WithKeys("u")),
	chat:     key.NewBinding(key.WithKeys("?")),
	inbox:    key.NewBinding(key.WithKeys("o")),
}
