// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

func typeText(m tea.Model, s string) tea.Model {
	m, _ = m.Update(runes(s))
	return m
}

func TestLoginModel(t *testing.T) {
	t.Run("signs in and goes home", func(t *testing.T) {
		sessions := &fakeSessions{}
		var gotEmail, gotPassword string
		sessions.signIn = func(email, password string) error {
			gotEmail, gotPassword = email, password
			sessions.signedIn("u-1", models.RoleUser)
			return nil
		}
		m := NewLoginModel(context.Background(), sessions)
		m.Init()

		typeText(m, "ana@eco.com")
		m.Update(keyOf(tea.KeyTab))
		typeText(m, "segredo1")
		_, cmd := m.Update(keyOf(tea.KeyEnter))
		require.NotNil(t, cmd)

		msg := cmd()
		assert.Equal(t, signInDoneMsg{}, msg)
		assert.Equal(t, "ana@eco.com", gotEmail)
		assert.Equal(t, "segredo1", gotPassword)

		_, cmd = m.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, NavigateTo{Page: gate.UserHome}, cmd())
	})

	t.Run("returns to the requested page", func(t *testing.T) {
		tests := []struct {
			name string
			role models.Role
			from string
			want string
		}{
			{name: "permitted", role: models.RoleUser, from: "/chat", want: "/chat"},
			{name: "not permitted", role: models.RoleUser, from: "/admin/users", want: gate.UserHome},
			{name: "admin", role: models.RoleAdmin, from: "/admin/goals", want: "/admin/goals"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				sessions := (&fakeSessions{}).signedIn("p-1", tt.role)
				m := NewLoginModel(context.Background(), sessions)
				m.Init()

				m.Update(loginFrom{From: tt.from})
				_, cmd := m.Update(signInDoneMsg{})

				require.NotNil(t, cmd)
				assert.Equal(t, NavigateTo{Page: tt.want}, cmd())
			})
		}
	})

	t.Run("placeholder role defers the return", func(t *testing.T) {
		sessions := (&fakeSessions{}).signedIn("a-1", models.RoleUser)
		sessions.principal.Provisional = true
		m := NewLoginModel(context.Background(), sessions)
		m.Init()

		m.Update(loginFrom{From: "/admin/users"})
		_, cmd := m.Update(signInDoneMsg{})

		require.NotNil(t, cmd)
		assert.Equal(t, returnAfterProfile{From: "/admin/users", Page: gate.UserHome}, cmd())
	})

	t.Run("empty fields", func(t *testing.T) {
		m := NewLoginModel(context.Background(), &fakeSessions{})
		m.Init()

		_, cmd := m.Update(keyOf(tea.KeyEnter))

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), "Email e senha são obrigatórios.")
	})

	t.Run("wrong credentials", func(t *testing.T) {
		m := NewLoginModel(context.Background(), &fakeSessions{})
		m.Init()

		_, cmd := m.Update(signInDoneMsg{err: service.ErrInvalidCredentials})

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), service.Reason(service.ErrInvalidCredentials))
	})
}

func TestRegisterModel(t *testing.T) {
	fill := func(m *RegisterModel, name, email, password, repeat string) {
		for i, v := range []string{name, email, password, repeat} {
			if i > 0 {
				m.Update(keyOf(tea.KeyTab))
			}
			typeText(m, v)
		}
	}

	t.Run("passwords differ", func(t *testing.T) {
		m := NewRegisterModel(context.Background(), &fakeSessions{})
		m.Init()
		fill(m, "Ana", "ana@eco.com", "segredo1", "segredo2")

		_, cmd := m.Update(keyOf(tea.KeyEnter))

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), "As senhas não coincidem.")
	})

	t.Run("creates the account and opens login", func(t *testing.T) {
		var got []string
		sessions := &fakeSessions{signUp: func(email, password, name string) error {
			got = []string{email, password, name}
			return nil
		}}
		m := NewRegisterModel(context.Background(), sessions)
		m.Init()
		fill(m, "Ana", "ana@eco.com", "segredo1", "segredo1")

		_, cmd := m.Update(keyOf(tea.KeyEnter))
		require.NotNil(t, cmd)
		msg := cmd()
		assert.Equal(t, []string{"ana@eco.com", "segredo1", "Ana"}, got)

		_, cmd = m.Update(msg)
		require.NotNil(t, cmd)
		nav, ok := cmd().(NavigateTo)
		require.True(t, ok)
		assert.Equal(t, gate.LoginPath, nav.Page)
		assert.IsType(t, notice{}, nav.Payload)
	})

	t.Run("email taken", func(t *testing.T) {
		m := NewRegisterModel(context.Background(), &fakeSessions{})
		m.Init()

		m.Update(signUpDoneMsg{err: service.ErrEmailTaken})

		assert.Contains(t, m.View(), service.Reason(service.ErrEmailTaken))
	})
}

func TestAdminIdeasModel(t *testing.T) {
	newModel := func() (*AdminIdeasModel, *fakeIdeas) {
		services, ideas, _ := newTestServices((&fakeSessions{}).signedIn("a-1", models.RoleAdmin))
		ideas.ideas = []models.Idea{
			{ID: "i-1", Title: "Reuso de água", Category: models.CategoryWater, Status: models.StatusPending},
			{ID: "i-2", Title: "Painéis solares", Category: models.CategoryEnergy, Status: models.StatusApproved},
		}
		m := NewAdminIdeasModel(context.Background(), services)
		m.Init()
		return m, ideas
	}

	t.Run("approve", func(t *testing.T) {
		m, ideas := newModel()
		var gotID string
		var gotStatus models.IdeaStatus
		ideas.updateStatus = func(id string, status models.IdeaStatus) (models.Idea, error) {
			gotID, gotStatus = id, status
			idea := ideas.ideas[0]
			idea.Status = status
			return idea, nil
		}

		_, cmd := m.Update(runes("a"))
		require.NotNil(t, cmd)
		m.Update(cmd())

		assert.Equal(t, "i-1", gotID)
		assert.Equal(t, models.StatusApproved, gotStatus)
		assert.Contains(t, m.View(), "agora está aprovada")
	})

	t.Run("decided idea cannot change", func(t *testing.T) {
		m, _ := newModel()
		m.Update(runes("j"))

		_, cmd := m.Update(runes("x"))

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), "Só ideias em análise podem ser avaliadas.")
	})

	t.Run("update failure", func(t *testing.T) {
		m, ideas := newModel()
		ideas.updateStatus = func(string, models.IdeaStatus) (models.Idea, error) {
			return models.Idea{}, service.ErrForbidden
		}

		_, cmd := m.Update(runes("x"))
		require.NotNil(t, cmd)
		m.Update(cmd())

		assert.Contains(t, m.View(), service.Reason(service.ErrForbidden))
	})

	t.Run("filters", func(t *testing.T) {
		m, _ := newModel()

		m.Update(runes("s"))
		view := m.View()
		assert.Contains(t, view, "Reuso de água")
		assert.NotContains(t, view, "Painéis solares")

		m.Update(runes("s"))
		m.Update(runes("g"))
		view = m.View()
		assert.Contains(t, view, "Nenhuma ideia encontrada.")
	})
}

func TestAdminGoalsModel(t *testing.T) {
	newModel := func() (*AdminGoalsModel, *fakeGoals) {
		services, _, goals := newTestServices((&fakeSessions{}).signedIn("a-1", models.RoleAdmin))
		goals.categories = []models.CategoryInfo{
			{Name: models.CategoryWater, DisplayName: "Água", Unit: "litros", HasGoals: true},
			{Name: models.CategoryTransport, DisplayName: "Transporte", Unit: "km"},
		}
		m := NewAdminGoalsModel(context.Background(), services)
		m.Init()
		return m, goals
	}

	t.Run("edit and save", func(t *testing.T) {
		m, goals := newModel()
		var got []models.GoalUpdate
		goals.setMany = func(updates []models.GoalUpdate) []service.GoalFailure {
			got = updates
			return nil
		}

		m.Update(runes("e"))
		require.True(t, m.editing)
		_, cmd := m.Update(keyOf(tea.KeyEnter))
		require.NotNil(t, cmd)
		m.Update(cmd())

		assert.Equal(t, []models.GoalUpdate{
			{GoalKey: models.GoalKey{Category: models.CategoryWater, Period: models.PeriodDaily}, Value: 350},
			{GoalKey: models.GoalKey{Category: models.CategoryWater, Period: models.PeriodWeekly}, Value: 2500},
			{GoalKey: models.GoalKey{Category: models.CategoryWater, Period: models.PeriodMonthly}, Value: 10000},
		}, got)
		assert.False(t, m.editing)
		assert.Contains(t, m.View(), "3 metas salvas.")
	})

	t.Run("partial failure keeps editing", func(t *testing.T) {
		m, _ := newModel()
		m.Update(runes("e"))

		m.Update(goalsSavedMsg{
			failures: []service.GoalFailure{{Key: models.GoalKey{Category: models.CategoryWater, Period: models.PeriodDaily}, Reason: "inválida"}},
			total:    3,
		})

		assert.True(t, m.editing)
		assert.Contains(t, m.View(), "1 de 3 metas não foram salvas")
	})

	t.Run("not a number", func(t *testing.T) {
		m, _ := newModel()
		m.Update(runes("e"))
		typeText(m, "x")

		_, cmd := m.Update(keyOf(tea.KeyEnter))

		assert.Nil(t, cmd)
		assert.Contains(t, m.View(), "não é um número")
	})

	t.Run("inactive category cannot be edited", func(t *testing.T) {
		m, _ := newModel()
		m.Update(runes("j"))

		m.Update(runes("e"))

		assert.False(t, m.editing)
		assert.Contains(t, m.View(), "Ative as metas da categoria antes de editar.")
	})

	t.Run("toggle activates", func(t *testing.T) {
		m, goals := newModel()
		m.Update(runes("j"))

		_, cmd := m.Update(runes("t"))
		require.NotNil(t, cmd)
		m.Update(cmd())

		assert.Equal(t, []models.Category{models.CategoryTransport}, goals.activated)
		assert.Contains(t, m.View(), "Metas de Transporte ativadas.")
	})
}

func TestIdeasModel_CopyAttachmentURL(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	url := "https://files.example.com/u-1/plano.pdf"
	services, ideas, _ := newTestServices((&fakeSessions{}).signedIn("u-1", models.RoleUser))
	ideas.ideas = []models.Idea{
		{ID: "i-1", UserID: "u-1", Title: "Sem anexo", Status: models.StatusPending},
		{ID: "i-2", UserID: "u-1", Title: "Com anexo", Status: models.StatusPending, FileURL: &url},
		{ID: "i-3", UserID: "u-2", Title: "De outra pessoa", Status: models.StatusPending},
	}
	m := NewIdeasModel(context.Background(), services)
	m.Init()

	_, cmd := m.Update(runes("c"))
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Esta ideia não tem anexo.")
	assert.NotContains(t, m.View(), "De outra pessoa")

	m.Update(runes("j"))
	_, cmd = m.Update(runes("c"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, url, copied)
	assert.Contains(t, m.View(), "URL do anexo copiada.")
}

func TestChatModel(t *testing.T) {
	services, _, _ := newTestServices((&fakeSessions{}).signedIn("u-1", models.RoleUser))
	var asked []string
	services.Assistant = assistantFunc(func(message string) (string, error) {
		asked = append(asked, message)
		if message == "falha" {
			return "", service.ErrAssistantUnavailable
		}
		return "Feche a torneira ao escovar os dentes.", nil
	})
	m := NewChatModel(context.Background(), services)
	m.Init()

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	assert.Nil(t, cmd, "blank questions are not sent")

	typeText(m, "Como economizar água?")
	_, cmd = m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, []string{"Como economizar água?"}, asked)
	assert.Contains(t, m.View(), "Feche a torneira")
	assert.Len(t, m.history, 2)

	typeText(m, "falha")
	_, cmd = m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Len(t, m.history, 3)
	assert.Contains(t, m.View(), service.Reason(service.ErrAssistantUnavailable))

	_, cmd = m.Update(keyOf(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: gate.UserHome}, cmd())
}

func TestDashboardModel_View(t *testing.T) {
	services, ideas, _ := newTestServices((&fakeSessions{}).signedIn("u-1", models.RoleUser))
	ideas.ideas = []models.Idea{
		{ID: "i-1", UserID: "u-1", Category: models.CategoryWater, Status: models.StatusApproved},
		{ID: "i-2", UserID: "u-1", Category: models.CategoryWater, Status: models.StatusPending},
		{ID: "i-3", UserID: "u-2", Category: models.CategoryWater, Status: models.StatusApproved},
	}
	m := NewDashboardModel(context.Background(), services)
	m.Init()
	m.Update(ideasLoadedMsg{})

	view := m.View()
	assert.Contains(t, view, "Ideias: 2")
	assert.Contains(t, view, "Aprovação: 50%")
	assert.Contains(t, view, "Primeira Ideia")
	assert.Contains(t, view, "meta diária")

	m.Update(keyOf(tea.KeyTab))
	assert.Contains(t, m.View(), "meta semanal")

	_, cmd := m.Update(runes("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: "/ideas/new"}, cmd())

	m.Update(ideasLoadedMsg{err: errors.New("boom")})
	assert.Contains(t, m.View(), "Erro: ")
}

func TestDashboardModel_SignOut(t *testing.T) {
	sessions := (&fakeSessions{}).signedIn("u-1", models.RoleUser)
	services, _, _ := newTestServices(sessions)
	m := NewDashboardModel(context.Background(), services)

	_, cmd := m.Update(keyOf(tea.KeyCtrlO))
	require.NotNil(t, cmd)

	assert.Equal(t, signOutDoneMsg{}, cmd())
	assert.Equal(t, 1, sessions.signOut)
}
