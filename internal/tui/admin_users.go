// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// AdminUsersModel lists profiles and switches their role.
type AdminUsersModel struct {
	ctx      context.Context
	services *service.ClientServices

	users  []models.Profile
	idx    int
	busy   bool
	status statusLine
}

func NewAdminUsersModel(ctx context.Context, services *service.ClientServices) *AdminUsersModel {
	return &AdminUsersModel{ctx: ctx, services: services}
}

func (m *AdminUsersModel) Init() tea.Cmd {
	m.status = statusLine{}
	return m.cmdLoad()
}

func (m *AdminUsersModel) cmdLoad() tea.Cmd {
	ctx, users := m.ctx, m.services.Users
	return func() tea.Msg {
		list, err := users.ListUsers(ctx)
		return usersLoadedMsg{users: list, err: err}
	}
}

func (m *AdminUsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
			return m, nil
		}
		m.users = msg.users
		m.idx = clampIndex(m.idx, len(m.users))

	case roleChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
			return m, nil
		}
		for i := range m.users {
			if m.users[i].UserID == msg.profile.UserID {
				m.users[i] = msg.profile
			}
		}
		m.status = statusLine{text: fmt.Sprintf("%s agora é %s.", msg.profile.Name, roleLabel(msg.profile.Role))}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(gate.AdminHome)
		case key.Matches(msg, keys.refresh):
			return m, m.cmdLoad()
		case key.Matches(msg, keys.role):
			return m, m.toggleRole()
		default:
			m.idx = moveCursor(msg.String(), m.idx, len(m.users))
		}
	}
	return m, nil
}

func (m *AdminUsersModel) toggleRole() tea.Cmd {
	if len(m.users) == 0 || m.busy {
		return nil
	}
	target := m.users[m.idx]
	if p, ok := m.services.Sessions.CurrentPrincipal(); ok && p.ID == target.UserID {
		m.status = errorStatus("Você não pode alterar o próprio papel.")
		return nil
	}

	next := models.RoleAdmin
	if target.Role == models.RoleAdmin {
		next = models.RoleUser
	}

	m.busy = true
	ctx, users := m.ctx, m.services.Users
	return func() tea.Msg {
		profile, err := users.SetRole(ctx, target.UserID, next)
		return roleChangedMsg{profile: profile, err: err}
	}
}

func (m *AdminUsersModel) View() string {
	var b strings.Builder
	if len(m.users) == 0 {
		b.WriteString("Nenhum usuário carregado.")
	} else {
		fmt.Fprintf(&b, "%-5s │ %-20s │ %-28s │ %-13s │ %s\n", "#", "Nome", "Email", "Papel", "Desde")
		b.WriteString(strings.Repeat("─", 90))
		b.WriteString("\n")
		for i, u := range m.users {
			fmt.Fprintf(&b, "%-5s │ %-20s │ %-28s │ %-13s │ %s\n",
				cursorCell(i, m.idx), fitText(u.Name, 20), fitText(u.Email, 28), roleLabel(u.Role), formatDate(u.CreatedAt))
		}
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}
	return renderPage("USUÁRIOS", b.String(), "↑/↓: navegar │ p: alternar papel │ r: atualizar │ esc: voltar")
}

func roleLabel(r models.Role) string {
	if r == models.RoleAdmin {
		return "administrador"
	}
	return "usuário"
}
