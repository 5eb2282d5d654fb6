// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/impact"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

const recentIdeas = 5

// AdminModel is the administrator's home with the key figures over all
// ideas.
type AdminModel struct {
	ctx      context.Context
	services *service.ClientServices

	loading bool
	status  statusLine
}

func NewAdminModel(ctx context.Context, services *service.ClientServices) *AdminModel {
	return &AdminModel{ctx: ctx, services: services}
}

func (m *AdminModel) Init() tea.Cmd {
	m.loading = true
	m.status = statusLine{}
	return tea.Batch(
		cmdRefreshIdeas(m.ctx, m.services.Ideas),
		cmdLoadGoals(m.ctx, m.services.Goals),
	)
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = statusLine{text: msg.Text}
	case ideasLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
	case goalsLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.ideas):
			return m, navigate("/admin/ideas")
		case key.Matches(msg, keys.goals):
			return m, navigate("/admin/goals")
		case key.Matches(msg, keys.users):
			return m, navigate("/admin/users")
		case key.Matches(msg, keys.chat):
			return m, navigate("/chat")
		case key.Matches(msg, keys.inbox):
			return m, navigate("/notifications")
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.logout):
			return m, cmdSignOut(m.ctx, m.services.Sessions)
		}
	}
	return m, nil
}

func (m *AdminModel) View() string {
	o := impact.NewOverview(m.services.Ideas.All(), recentIdeas)
	reg := m.services.Goals.Registry()

	var b strings.Builder
	fmt.Fprintf(&b, "Administrador: %s\n\n", principalName(m.services.Sessions))
	if m.loading {
		b.WriteString("Atualizando...\n\n")
	}

	fmt.Fprintf(&b, "Total: %d │ Em Análise: %d │ Aprovadas: %d │ Reprovadas: %d │ Aprovação: %d%%\n\n",
		o.Total, o.Pending, o.Approved, o.Rejected, o.ApprovalRate)

	b.WriteString("Por categoria\n")
	for _, c := range models.Categories {
		fmt.Fprintf(&b, "  %-16s %d\n", fitText(categoryLabel(reg, c), 16), o.ByCategory[c])
	}

	b.WriteString("\nRecentes\n")
	if len(o.Recent) == 0 {
		b.WriteString("  -\n")
	}
	for _, idea := range o.Recent {
		fmt.Fprintf(&b, "  %s │ %-28s │ %-11s │ %s\n",
			formatDate(idea.CreatedAt), fitText(idea.Title, 28), idea.Status.Label(), authorOrDash(idea.Author))
	}

	if s := m.status.View(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}

	return renderPage("ADMINISTRAÇÃO", strings.TrimRight(b.String(), "\n"),
		"i: ideias │ m: metas │ u: usuários │ ?: assistente │ o: notificações │ r: atualizar │ ctrl+o: sair da conta")
}
