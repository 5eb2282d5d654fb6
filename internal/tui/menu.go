// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
)

// MenuModel is the welcome page shown without a session.
type MenuModel struct {
	items  []string
	idx    int
	status statusLine
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Entrar", "Criar conta"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	m.status = statusLine{}
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if n, ok := msg.(notice); ok {
		m.status = statusLine{text: n.Text}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter":
		if m.idx == 0 {
			return m, navigate(gate.LoginPath)
		}
		return m, navigate(SignUpPath)
	default:
		m.idx = moveCursor(keyMsg.String(), m.idx, len(m.items))
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString("Ideias sustentáveis para o dia a dia da empresa.\n\n")
	if s := m.status.View(); s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	b.WriteString(renderMenu("Ação", m.items, m.idx))

	return renderPage("ECO-IDEIAS", b.String(), "enter: selecionar │ ↑/↓: navegar │ ctrl+v: versão")
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
