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

// NotificationsModel shows the principal's notifications, newest first as
// returned by the server.
type NotificationsModel struct {
	ctx      context.Context
	services *service.ClientServices

	items  []models.Notification
	idx    int
	status statusLine
}

func NewNotificationsModel(ctx context.Context, services *service.ClientServices) *NotificationsModel {
	return &NotificationsModel{ctx: ctx, services: services}
}

func (m *NotificationsModel) Init() tea.Cmd {
	m.status = statusLine{}
	ctx, client := m.ctx, m.services.Notifications
	return func() tea.Msg {
		items, err := client.List(ctx)
		return notificationsLoadedMsg{items: items, err: err}
	}
}

func (m *NotificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
			return m, nil
		}
		m.items = msg.items
		m.idx = clampIndex(m.idx, len(m.items))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.services.Sessions.IsAdministrator() {
				return m, navigate(gate.AdminHome)
			}
			return m, navigate(gate.UserHome)
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		default:
			m.idx = moveCursor(msg.String(), m.idx, len(m.items))
		}
	}
	return m, nil
}

func (m *NotificationsModel) View() string {
	var b strings.Builder
	if len(m.items) == 0 {
		b.WriteString("Nenhuma notificação.")
	}
	for i, n := range m.items {
		read := "•"
		if n.Read {
			read = " "
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", cursorCell(i, m.idx), read, typeIcon(n.Type), titleStyle.Render(n.Title))
		fmt.Fprintf(&b, "      %s\n", n.Message)
		fmt.Fprintf(&b, "      %s\n", helpStyle.Render(formatDate(n.CreatedAt)))
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}
	return renderPage("NOTIFICAÇÕES", strings.TrimRight(b.String(), "\n"), "↑/↓: navegar │ r: atualizar │ esc: voltar")
}

func typeIcon(t models.NotificationType) string {
	switch t {
	case models.NotificationSuccess:
		return okStyle.Render("[✓]")
	case models.NotificationWarning:
		return errorStyle.Render("[!]")
	default:
		return "[i]"
	}
}
