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

const progressWidth = 20

// DashboardModel is the regular user's home: own idea counts, progress of
// approved ideas towards the goals of the selected period and achievements.
type DashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	cfg      impact.Config

	period  int
	loading bool
	status  statusLine
}

func NewDashboardModel(ctx context.Context, services *service.ClientServices) *DashboardModel {
	return &DashboardModel{
		ctx:      ctx,
		services: services,
		cfg:      impact.DefaultConfig(),
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.status = statusLine{}
	return tea.Batch(
		cmdRefreshIdeas(m.ctx, m.services.Ideas),
		cmdLoadGoals(m.ctx, m.services.Goals),
	)
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = statusLine{text: msg.Text}
		return m, nil
	case ideasLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
		return m, nil
	case goalsLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.period = (m.period + 1) % len(models.Periods)
		case key.Matches(msg, keys.backtab):
			m.period = (m.period - 1 + len(models.Periods)) % len(models.Periods)
		case key.Matches(msg, keys.newItem):
			return m, navigate("/ideas/new")
		case key.Matches(msg, keys.ideas):
			return m, navigate("/ideas")
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

func (m *DashboardModel) own() []models.Idea {
	p, ok := m.services.Sessions.CurrentPrincipal()
	if !ok {
		return nil
	}
	return m.services.Ideas.ForUser(p.ID)
}

func (m *DashboardModel) View() string {
	ideas := m.own()
	summary := impact.Summarize(ideas)
	period := models.Periods[m.period]
	reg := m.services.Goals.Registry()

	var b strings.Builder
	fmt.Fprintf(&b, "Olá, %s!\n\n", principalName(m.services.Sessions))
	if m.loading {
		b.WriteString("Atualizando...\n\n")
	}

	fmt.Fprintf(&b, "Ideias: %d │ Em Análise: %d │ Aprovadas: %d │ Reprovadas: %d │ Aprovação: %d%%\n\n",
		summary.Total, summary.Pending, summary.Approved, summary.Rejected, summary.ApprovalRate)

	fmt.Fprintf(&b, "Impacto (meta %s)\n", period.Label())
	for _, p := range impact.Progress(ideas, m.services.Goals, period, m.cfg) {
		fmt.Fprintf(&b, "%-16s %s %3d%%  %s / %s %s\n",
			fitText(categoryLabel(reg, p.Category), 16),
			progressBar(p.Percent, progressWidth),
			p.Percent,
			formatNumber(p.Impact),
			formatNumber(p.Goal),
			reg.Unit(p.Category),
		)
	}

	b.WriteString("\nConquistas\n")
	for _, a := range impact.Achievements(ideas, impact.DefaultThresholds()) {
		mark := "[ ]"
		if a.Unlocked {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, a.Title, a.Description)
	}

	if s := m.status.View(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}

	return renderPage("PAINEL", strings.TrimRight(b.String(), "\n"),
		"tab: período │ n: nova ideia │ i: minhas ideias │ ?: assistente │ o: notificações │ r: atualizar │ ctrl+o: sair da conta")
}
