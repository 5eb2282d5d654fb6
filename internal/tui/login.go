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
	"github.com/MKhiriev/eco-ideas/models"
)

// LoginModel signs in with e-mail and password. After a redirect it returns
// to the page that was requested, when the principal's role permits it.
type LoginModel struct {
	ctx      context.Context
	sessions service.SessionStore

	form       form
	from       string
	submitting bool
	status     statusLine
}

func NewLoginModel(ctx context.Context, sessions service.SessionStore) *LoginModel {
	return &LoginModel{
		ctx:      ctx,
		sessions: sessions,
		form: newForm(
			[]string{"Email", "Senha"},
			[]textinput.Model{newInput("voce@empresa.com", 254, false), newInput("senha", 256, true)},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.from = ""
	m.submitting = false
	m.status = statusLine{}
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginFrom:
		m.from = msg.From
		return m, nil
	case notice:
		m.status = statusLine{text: msg.Text}
		return m, nil
	case signInDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.status = newStatus(msg.err, "")
			return m, nil
		}
		var principal models.Principal
		if p, ok := m.sessions.CurrentPrincipal(); ok {
			principal = p
		}
		target := gate.LoginReturn(m.from, principal.Role)
		m.form.reset()
		if principal.Provisional && m.from != "" && target != m.from {
			// the requested page may still open once the real role is known
			ret := returnAfterProfile{From: m.from, Page: target}
			return m, func() tea.Msg { return ret }
		}
		return m, navigate(target)
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
			email := m.form.trimmed(0)
			password := m.form.value(1)
			if email == "" || password == "" {
				m.status = errorStatus("Email e senha são obrigatórios.")
				return m, nil
			}
			m.status = statusLine{}
			m.submitting = true
			return m, m.cmdSignIn(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.View())
	if m.submitting {
		b.WriteString("\n\n[Entrando...]")
	} else {
		b.WriteString("\n\n[Entrar]")
	}
	if s := m.status.View(); s != "" {
		b.WriteString("\n\n")
		b.WriteString(s)
	}
	return renderPage("ENTRAR", b.String(), "esc: voltar │ tab: próximo campo │ enter: confirmar")
}

func (m *LoginModel) cmdSignIn(email, password string) tea.Cmd {
	ctx, sessions := m.ctx, m.sessions
	return func() tea.Msg {
		return signInDoneMsg{err: sessions.SignIn(ctx, email, password)}
	}
}
