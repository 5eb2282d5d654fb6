// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// IdeasModel lists the ideas of the signed-in user.
type IdeasModel struct {
	ctx      context.Context
	services *service.ClientServices

	list   ideaList
	status statusLine
}

func NewIdeasModel(ctx context.Context, services *service.ClientServices) *IdeasModel {
	return &IdeasModel{ctx: ctx, services: services}
}

func (m *IdeasModel) Init() tea.Cmd {
	m.list.expanded = false
	m.status = statusLine{}
	return cmdRefreshIdeas(m.ctx, m.services.Ideas)
}

func (m *IdeasModel) ideas() []models.Idea {
	p, ok := m.services.Sessions.CurrentPrincipal()
	if !ok {
		return nil
	}
	return m.services.Ideas.ForUser(p.ID)
}

func (m *IdeasModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = statusLine{text: msg.Text}
	case ideasLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
	case copiedMsg:
		m.status = copyStatus(msg.err)
	case tea.KeyMsg:
		ideas := m.ideas()
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(gate.UserHome)
		case key.Matches(msg, keys.enter):
			m.list.expanded = !m.list.expanded
		case key.Matches(msg, keys.newItem):
			return m, navigate("/ideas/new")
		case key.Matches(msg, keys.refresh):
			return m, cmdRefreshIdeas(m.ctx, m.services.Ideas)
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

func (m *IdeasModel) View() string {
	var b strings.Builder
	b.WriteString(m.list.view(m.ideas(), m.services.Goals.Registry(), false))
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}
	return renderPage("MINHAS IDEIAS", b.String(),
		"↑/↓: navegar │ enter: detalhes │ c: copiar URL do anexo │ n: nova ideia │ r: atualizar │ esc: voltar")
}
