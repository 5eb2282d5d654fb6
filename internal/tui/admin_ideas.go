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

var statusFilters = []models.IdeaStatus{"", models.StatusPending, models.StatusApproved, models.StatusRejected}

// AdminIdeasModel moderates ideas: filter by status and category, approve
// or reject the selected one.
type AdminIdeasModel struct {
	ctx      context.Context
	services *service.ClientServices

	list      ideaList
	statusIdx int
	// categoryIdx is 0 for all categories, i+1 for models.Categories[i].
	categoryIdx int
	updating    bool
	status      statusLine
}

func NewAdminIdeasModel(ctx context.Context, services *service.ClientServices) *AdminIdeasModel {
	return &AdminIdeasModel{ctx: ctx, services: services}
}

func (m *AdminIdeasModel) Init() tea.Cmd {
	m.list.expanded = false
	m.status = statusLine{}
	return cmdRefreshIdeas(m.ctx, m.services.Ideas)
}

func (m *AdminIdeasModel) filter() models.IdeaFilter {
	f := models.IdeaFilter{Status: statusFilters[m.statusIdx]}
	if m.categoryIdx > 0 {
		f.Category = models.Categories[m.categoryIdx-1]
	}
	return f
}

func (m *AdminIdeasModel) ideas() []models.Idea {
	return m.services.Ideas.Filter(m.filter())
}

func (m *AdminIdeasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ideasLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
	case statusUpdatedMsg:
		m.updating = false
		m.status = newStatus(msg.err, fmt.Sprintf("\"%s\" agora está %s.", msg.idea.Title, strings.ToLower(msg.idea.Status.Label())))
	case copiedMsg:
		m.status = copyStatus(msg.err)
	case tea.KeyMsg:
		ideas := m.ideas()
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(gate.AdminHome)
		case key.Matches(msg, keys.enter):
			m.list.expanded = !m.list.expanded
		case key.Matches(msg, keys.status):
			m.statusIdx = (m.statusIdx + 1) % len(statusFilters)
			m.list.idx = 0
		case key.Matches(msg, keys.category):
			m.categoryIdx = (m.categoryIdx + 1) % (len(models.Categories) + 1)
			m.list.idx = 0
		case key.Matches(msg, keys.refresh):
			return m, cmdRefreshIdeas(m.ctx, m.services.Ideas)
		case key.Matches(msg, keys.approve):
			return m, m.setStatus(ideas, models.StatusApproved)
		case key.Matches(msg, keys.reject):
			return m, m.setStatus(ideas, models.StatusRejected)
		case key.Matches(msg, keys.copy):
			idea, ok := m.list.selected(ideas)
			if !ok {
				return m, nil
			}
			if !idea.HasAttachment() {
				m.status = errorStatus("Esta ideia não tem anexo.")
				return m, nil
			}
			return m, cmdCopy(*idea.FileURL)
		default:
			m.list.move(msg.String(), len(ideas))
		}
	}
	return m, nil
}

func (m *AdminIdeasModel) setStatus(ideas []models.Idea, status models.IdeaStatus) tea.Cmd {
	idea, ok := m.list.selected(ideas)
	if !ok || m.updating {
		return nil
	}
	if idea.Status != models.StatusPending && idea.Status != status {
		m.status = errorStatus("Só ideias em análise podem ser avaliadas.")
		return nil
	}

	m.updating = true
	ctx, cache := m.ctx, m.services.Ideas
	return func() tea.Msg {
		updated, err := cache.UpdateStatus(ctx, idea.ID, status)
		if err != nil {
			updated = idea
		}
		return statusUpdatedMsg{idea: updated, err: err}
	}
}

func (m *AdminIdeasModel) View() string {
	reg := m.services.Goals.Registry()
	f := m.filter()

	statusLabel := "Todos"
	if f.Status != "" {
		statusLabel = f.Status.Label()
	}
	categoryText := "Todas"
	if f.Category != "" {
		categoryText = categoryLabel(reg, f.Category)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Filtros: status=%s │ categoria=%s\n\n", statusLabel, categoryText)
	b.WriteString(m.list.view(m.ideas(), reg, true))
	if m.updating {
		b.WriteString("\n\nAtualizando status...")
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}

	return renderPage("GERENCIAR IDEIAS", b.String(),
		"↑/↓: navegar │ enter: detalhes │ a: aprovar │ x: reprovar │ s: status │ g: categoria │ c: copiar URL │ r: atualizar │ esc: voltar")
}
