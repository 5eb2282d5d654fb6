// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
)

// RegisterModel creates an account. Sign-up never signs in; on success the
// login page is opened with a notice.
type RegisterModel struct {
	ctx      context.Context
	sessions service.SessionStore

	form       form
	submitting bool
	status     statusLine
}

func NewRegisterModel(ctx context.Context, sessions service.SessionStore) *RegisterModel {
	return &RegisterModel{
		ctx:      ctx,
		sessions: sessions,
		form: newForm(
			[]string{"Nome", "Email", "Senha", "Repita a senha"},
			[]textinput.Model{
				newInput("seu nome", 120, false),
				newInput("voce@empresa.com", 254, false),
				newInput("senha", 256, true),
				newInput("senha", 256, true),
			},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	m.status = statusLine{}
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signUpDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.status = newStatus(result.err, "")
			return m, nil
		}
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    gate.LoginPath,
				Payload: notice{Text: "Conta criada para " + result.email + ". Faça login."},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(WelcomePath)
		case "tab":
			m.form.focusNext()
			return m, nil
		case "shift+tab":
			m.form.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			name := m.form.trimmed(0)
			email := m.form.trimmed(1)
			password := m.form.value(2)
			if password != m.form.value(3) {
				m.status = errorStatus("As senhas não coincidem.")
				return m, nil
			}
			m.status = statusLine{}
			m.submitting = true
			return m, m.cmdSignUp(email, password, name)
		}
	}

	return m, m.form.update(msg)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.submitting {
		b.WriteString("\n\n[Criando conta...]")
	} else {
		b.WriteString("\n\n[Criar conta]")
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}
	return renderPage("CRIAR CONTA", b.String(), "esc: voltar │ tab: próximo campo │ enter: confirmar")
}

func (m *RegisterModel) cmdSignUp(email, password, name string) tea.Cmd {
	ctx, sessions := m.ctx, m.sessions
	return func() tea.Msg {
		return signUpDoneMsg{email: email, err: sessions.SignUp(ctx, email, password, name)}
	}
}
