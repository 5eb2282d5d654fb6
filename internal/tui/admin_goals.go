// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// AdminGoalsModel activates categories and edits their daily, weekly and
// monthly targets.
type AdminGoalsModel struct {
	ctx      context.Context
	services *service.ClientServices

	idx     int
	editing bool
	edit    form
	busy    bool
	status  statusLine
}

func NewAdminGoalsModel(ctx context.Context, services *service.ClientServices) *AdminGoalsModel {
	return &AdminGoalsModel{ctx: ctx, services: services}
}

func (m *AdminGoalsModel) Init() tea.Cmd {
	m.editing = false
	m.status = statusLine{}
	return cmdLoadGoals(m.ctx, m.services.Goals)
}

func (m *AdminGoalsModel) categories() []models.CategoryInfo {
	return m.services.Goals.Categories()
}

func (m *AdminGoalsModel) selected() (models.CategoryInfo, bool) {
	cats := m.categories()
	if len(cats) == 0 {
		return models.CategoryInfo{}, false
	}
	m.idx = clampIndex(m.idx, len(cats))
	return cats[m.idx], true
}

func (m *AdminGoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalsLoadedMsg:
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
		}
		return m, nil

	case categoryToggledMsg:
		m.busy = false
		label := categoryLabel(m.services.Goals.Registry(), msg.category)
		if msg.active {
			m.status = newStatus(msg.err, "Metas de "+label+" ativadas.")
		} else {
			m.status = newStatus(msg.err, "Metas de "+label+" desativadas.")
		}
		return m, nil

	case goalsSavedMsg:
		m.busy = false
		if len(msg.failures) == 0 {
			m.editing = false
			m.status = statusLine{text: fmt.Sprintf("%d metas salvas.", msg.total)}
			return m, nil
		}
		parts := make([]string, 0, len(msg.failures))
		for _, f := range msg.failures {
			parts = append(parts, f.Key.Period.Label()+": "+f.Reason)
		}
		m.status = errorStatus(fmt.Sprintf("%d de %d metas não foram salvas (%s).",
			len(msg.failures), msg.total, strings.Join(parts, "; ")))
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(gate.AdminHome)
		case key.Matches(msg, keys.refresh):
			return m, cmdLoadGoals(m.ctx, m.services.Goals)
		case key.Matches(msg, keys.toggle):
			return m, m.toggle()
		case key.Matches(msg, keys.edit):
			return m, m.startEdit()
		default:
			m.idx = moveCursor(msg.String(), m.idx, len(m.categories()))
		}
	}
	return m, nil
}

func (m *AdminGoalsModel) toggle() tea.Cmd {
	info, ok := m.selected()
	if !ok || m.busy {
		return nil
	}
	m.busy = true

	ctx, goals, category := m.ctx, m.services.Goals, info.Name
	if info.HasGoals {
		return func() tea.Msg {
			return categoryToggledMsg{category: category, active: false, err: goals.DeactivateCategory(ctx, category)}
		}
	}
	return func() tea.Msg {
		_, err := goals.ActivateCategory(ctx, category)
		return categoryToggledMsg{category: category, active: true, err: err}
	}
}

func (m *AdminGoalsModel) startEdit() tea.Cmd {
	info, ok := m.selected()
	if !ok {
		return nil
	}
	if !info.HasGoals {
		m.status = errorStatus("Ative as metas da categoria antes de editar.")
		return nil
	}

	labels := make([]string, 0, len(models.Periods))
	inputs := make([]textinput.Model, 0, len(models.Periods))
	for _, p := range models.Periods {
		in := newInput("valor", 16, false)
		in.SetValue(formatNumber(m.services.Goals.Get(info.Name, p)))
		labels = append(labels, "Meta "+p.Label())
		inputs = append(inputs, in)
	}
	m.edit = newForm(labels, inputs)
	m.editing = true
	m.status = statusLine{}
	return textinput.Blink
}

func (m *AdminGoalsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "tab", "down":
		m.edit.focusNext()
		return m, nil
	case "shift+tab", "up":
		m.edit.focusPrev()
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		updates, err := m.updates()
		if err != nil {
			m.status = errorStatus(err.Error())
			return m, nil
		}
		m.busy = true
		ctx, goals := m.ctx, m.services.Goals
		return m, func() tea.Msg {
			return goalsSavedMsg{failures: goals.SetMany(ctx, updates), total: len(updates)}
		}
	}
	return m, m.edit.update(msg)
}

func (m *AdminGoalsModel) updates() ([]models.GoalUpdate, error) {
	info, ok := m.selected()
	if !ok {
		return nil, fmt.Errorf("nenhuma categoria selecionada")
	}

	out := make([]models.GoalUpdate, 0, len(models.Periods))
	for i, p := range models.Periods {
		raw := strings.ReplaceAll(m.edit.trimmed(i), ",", ".")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("meta %s: %q não é um número", p.Label(), m.edit.trimmed(i))
		}
		out = append(out, models.GoalUpdate{GoalKey: models.GoalKey{Category: info.Name, Period: p}, Value: v})
	}
	return out, nil
}

func (m *AdminGoalsModel) View() string {
	cats := m.categories()
	m.idx = clampIndex(m.idx, len(cats))

	var b strings.Builder
	if len(cats) == 0 {
		b.WriteString("Nenhuma categoria carregada.")
	} else {
		fmt.Fprintf(&b, "%-5s │ %-16s │ %-6s │ %-10s │ %-10s │ %-10s │ %s\n",
			"#", "Categoria", "Ativa", "Diária", "Semanal", "Mensal", "Unidade")
		b.WriteString(strings.Repeat("─", 84))
		b.WriteString("\n")
		for i, c := range cats {
			active, values := "não", []string{"-", "-", "-"}
			if c.HasGoals {
				active = "sim"
				for j, p := range models.Periods {
					values[j] = formatNumber(m.services.Goals.Get(c.Name, p))
				}
			}
			fmt.Fprintf(&b, "%-5s │ %-16s │ %-6s │ %-10s │ %-10s │ %-10s │ %s\n",
				cursorCell(i, m.idx), fitText(displayName(c), 16), active, values[0], values[1], values[2], dashIfEmpty(c.Unit))
		}
	}

	if m.editing {
		if info, ok := m.selected(); ok {
			fmt.Fprintf(&b, "\nEditando metas de %s (%s)\n", displayName(info), dashIfEmpty(info.Unit))
		}
		b.WriteString(m.edit.View())
	}
	if m.busy {
		b.WriteString("\n\nSalvando...")
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}

	hotKeys := "↑/↓: navegar │ t: ativar/desativar │ e: editar metas │ r: recarregar │ esc: voltar"
	if m.editing {
		hotKeys = "tab: próximo campo │ enter: salvar │ esc: cancelar"
	}
	return renderPage("METAS", b.String(), hotKeys)
}

func displayName(c models.CategoryInfo) string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return string(c.Name)
}
