// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
)

const chatHistoryLimit = 20

var chatWrapStyle = lipgloss.NewStyle().Width(80)

type chatEntry struct {
	fromUser bool
	text     string
}

// ChatModel talks to the sustainability assistant. Each question is sent
// on its own; the history is only shown locally.
type ChatModel struct {
	ctx      context.Context
	services *service.ClientServices

	input   textinput.Model
	history []chatEntry
	waiting bool
	status  statusLine
}

func NewChatModel(ctx context.Context, services *service.ClientServices) *ChatModel {
	in := newInput("pergunte sobre sustentabilidade", 1000, false)
	in.Width = 70
	in.Focus()
	return &ChatModel{ctx: ctx, services: services, input: in}
}

func (m *ChatModel) Init() tea.Cmd {
	m.status = statusLine{}
	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case chatReplyMsg:
		m.waiting = false
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
			return m, nil
		}
		m.push(chatEntry{text: msg.reply})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, navigate(m.home())
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.waiting {
				return m, nil
			}
			m.input.SetValue("")
			m.push(chatEntry{fromUser: true, text: question})
			m.waiting = true
			m.status = statusLine{}
			return m, m.cmdAsk(question)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ChatModel) push(e chatEntry) {
	m.history = append(m.history, e)
	if len(m.history) > chatHistoryLimit {
		m.history = m.history[len(m.history)-chatHistoryLimit:]
	}
}

func (m *ChatModel) home() string {
	if m.services.Sessions.IsAdministrator() {
		return gate.AdminHome
	}
	return gate.UserHome
}

func (m *ChatModel) cmdAsk(question string) tea.Cmd {
	ctx, assistant := m.ctx, m.services.Assistant
	return func() tea.Msg {
		reply, err := assistant.Ask(ctx, question)
		return chatReplyMsg{reply: reply, err: err}
	}
}

func (m *ChatModel) View() string {
	var b strings.Builder
	if len(m.history) == 0 {
		b.WriteString("Olá! Sou o assistente de sustentabilidade. Como posso ajudar?\n")
	}
	for _, e := range m.history {
		who := "Assistente"
		if e.fromUser {
			who = "Você"
		}
		b.WriteString(titleStyle.Render(who + ":"))
		b.WriteString("\n")
		b.WriteString(chatWrapStyle.Render(e.text))
		b.WriteString("\n\n")
	}
	if m.waiting {
		b.WriteString("Assistente está pensando...\n\n")
	}
	b.WriteString("> ")
	b.WriteString(m.input.View())
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}
	return renderPage("ASSISTENTE", b.String(), "enter: enviar │ esc: voltar")
}
