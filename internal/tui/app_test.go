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

func newTestRoot(sessions *fakeSessions) (RootModel, map[string]*stubPage) {
	stubs := make(map[string]*stubPage)
	pages := make(map[string]tea.Model)
	for _, path := range []string{WelcomePath, gate.LoginPath, SignUpPath, gate.UserHome, "/ideas", gate.AdminHome, "/admin/goals", "/chat"} {
		stubs[path] = &stubPage{name: path}
		pages[path] = stubs[path]
	}
	return NewRootModel(context.Background(), sessions, pages, models.NewAppBuildInfo("1.0.0", "2026-10-01", "abc123")), stubs
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_Restore(t *testing.T) {
	tests := []struct {
		name     string
		sessions *fakeSessions
		wantPath string
	}{
		{name: "no session opens welcome", sessions: &fakeSessions{loading: true}, wantPath: WelcomePath},
		{name: "user opens dashboard", sessions: (&fakeSessions{loading: true}).signedIn("u-1", models.RoleUser), wantPath: gate.UserHome},
		{name: "admin opens admin home", sessions: (&fakeSessions{loading: true}).signedIn("a-1", models.RoleAdmin), wantPath: gate.AdminHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, stubs := newTestRoot(tt.sessions)
			assert.Equal(t, "", root.Path())
			assert.Contains(t, root.View(), "Carregando sessão")

			msg := root.Init()()
			root, cmd := update(t, root, msg)

			assert.Equal(t, tt.wantPath, root.Path())
			assert.NotNil(t, cmd)
			assert.Equal(t, 1, stubs[tt.wantPath].inits)
		})
	}
}

func TestRootModel_RestoreFailureShowsNotice(t *testing.T) {
	root, _ := newTestRoot(&fakeSessions{loading: true, restoreErr: service.ErrBackendUnavailable})

	root, cmd := update(t, root, root.Init()())

	assert.Equal(t, WelcomePath, root.Path())
	require.NotNil(t, cmd)
}

func TestRootModel_NavigationWaitsForSession(t *testing.T) {
	sessions := &fakeSessions{loading: true}
	root, stubs := newTestRoot(sessions)

	root, cmd := update(t, root, NavigateTo{Page: "/admin/goals"})
	assert.Nil(t, cmd)
	assert.Equal(t, "", root.Path(), "no page is decided while loading")
	assert.Zero(t, stubs["/admin/goals"].inits)

	sessions.signedIn("a-1", models.RoleAdmin)
	root, _ = update(t, root, root.Init()())

	assert.Equal(t, "/admin/goals", root.Path())
	assert.Equal(t, 1, stubs["/admin/goals"].inits)
}

func TestRootModel_Gate(t *testing.T) {
	tests := []struct {
		name     string
		sessions *fakeSessions
		page     string
		wantPath string
	}{
		{name: "anonymous to login", sessions: &fakeSessions{}, page: "/ideas", wantPath: gate.LoginPath},
		{name: "user allowed", sessions: (&fakeSessions{}).signedIn("u-1", models.RoleUser), page: "/ideas", wantPath: "/ideas"},
		{name: "user to own home", sessions: (&fakeSessions{}).signedIn("u-1", models.RoleUser), page: "/admin/goals", wantPath: gate.UserHome},
		{name: "admin to own home", sessions: (&fakeSessions{}).signedIn("a-1", models.RoleAdmin), page: "/ideas", wantPath: gate.AdminHome},
		{name: "any role", sessions: (&fakeSessions{}).signedIn("a-1", models.RoleAdmin), page: "/chat", wantPath: "/chat"},
		{name: "public page", sessions: &fakeSessions{}, page: SignUpPath, wantPath: SignUpPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _ := newTestRoot(tt.sessions)

			root, cmd := update(t, root, NavigateTo{Page: tt.page})

			assert.Equal(t, tt.wantPath, root.Path())
			assert.NotNil(t, cmd)
		})
	}
}

func TestRootModel_UnknownPageIsIgnored(t *testing.T) {
	root, _ := newTestRoot((&fakeSessions{}).signedIn("u-1", models.RoleUser))
	root, _ = update(t, root, NavigateTo{Page: gate.UserHome})

	root, cmd := update(t, root, NavigateTo{Page: "/nowhere"})

	assert.Nil(t, cmd)
	assert.Equal(t, gate.UserHome, root.Path())
}

func TestRootModel_SignedOutLeavesGatedPage(t *testing.T) {
	sessions := (&fakeSessions{}).signedIn("u-1", models.RoleUser)
	root, stubs := newTestRoot(sessions)
	root, _ = update(t, root, NavigateTo{Page: "/ideas"})

	sessions.session, sessions.principal = nil, nil
	root, _ = update(t, root, sessionChangedMsg{change: service.SessionChange{Kind: service.SessionSignedOut}})

	assert.Equal(t, WelcomePath, root.Path())
	assert.Equal(t, 1, stubs[WelcomePath].inits)
}

func TestRootModel_SignedOutOnPublicPageStays(t *testing.T) {
	root, stubs := newTestRoot(&fakeSessions{})
	root, _ = update(t, root, NavigateTo{Page: gate.LoginPath})

	root, _ = update(t, root, sessionChangedMsg{change: service.SessionChange{Kind: service.SessionSignedOut}})

	assert.Equal(t, gate.LoginPath, root.Path())
	assert.Equal(t, 1, stubs[gate.LoginPath].inits)
}

func TestRootModel_ProfileResolvedRedirects(t *testing.T) {
	sessions := (&fakeSessions{}).signedIn("u-1", models.RoleUser)
	root, _ := newTestRoot(sessions)
	root, _ = update(t, root, NavigateTo{Page: gate.UserHome})

	// the provisional role was user, the resolved profile is an administrator
	sessions.principal.Role = models.RoleAdmin
	root, _ = update(t, root, sessionChangedMsg{change: service.SessionChange{Kind: service.SessionProfileResolved, Authenticated: true}})

	assert.Equal(t, gate.AdminHome, root.Path())
}

func TestRootModel_AdminReturnsToRequestedPage(t *testing.T) {
	tests := []struct {
		name     string
		resolved models.Role
		wantPath string
	}{
		{name: "administrator reaches the requested page", resolved: models.RoleAdmin, wantPath: "/admin/goals"},
		{name: "user stays on the dashboard", resolved: models.RoleUser, wantPath: gate.UserHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := &fakeSessions{}
			root, stubs := newTestRoot(sessions)
			login := NewLoginModel(context.Background(), sessions)
			root.pages[gate.LoginPath] = login

			root, _ = update(t, root, NavigateTo{Page: "/admin/goals"})
			require.Equal(t, gate.LoginPath, root.Path())
			root, _ = update(t, root, loginFrom{From: "/admin/goals"})

			// sign-in publishes the placeholder principal with role user
			sessions.signedIn("a-1", models.RoleUser)
			sessions.principal.Provisional = true
			root, cmd := update(t, root, signInDoneMsg{})
			require.NotNil(t, cmd)
			root, _ = update(t, root, cmd())
			assert.Equal(t, gate.UserHome, root.Path())

			sessions.principal.Role = tt.resolved
			sessions.principal.Provisional = false
			root, _ = update(t, root, sessionChangedMsg{change: service.SessionChange{Kind: service.SessionProfileResolved, Authenticated: true}})

			assert.Equal(t, tt.wantPath, root.Path())
			assert.Equal(t, 0, stubs[gate.AdminHome].inits)
		})
	}
}

func TestRootModel_ReturnIsDroppedAfterLeavingPage(t *testing.T) {
	sessions := (&fakeSessions{}).signedIn("a-1", models.RoleUser)
	sessions.principal.Provisional = true
	root, _ := newTestRoot(sessions)

	root, _ = update(t, root, returnAfterProfile{From: "/admin/goals", Page: gate.UserHome})
	require.Equal(t, gate.UserHome, root.Path())
	root, _ = update(t, root, NavigateTo{Page: "/chat"})

	sessions.principal.Role = models.RoleAdmin
	sessions.principal.Provisional = false
	root, _ = update(t, root, sessionChangedMsg{change: service.SessionChange{Kind: service.SessionProfileResolved, Authenticated: true}})

	assert.Equal(t, "/chat", root.Path())
}

func TestRootModel_SignOutDone(t *testing.T) {
	root, _ := newTestRoot((&fakeSessions{}).signedIn("u-1", models.RoleUser))
	root, _ = update(t, root, NavigateTo{Page: gate.UserHome})

	root, _ = update(t, root, signOutDoneMsg{})

	assert.Equal(t, WelcomePath, root.Path())
}

func TestRootModel_Keys(t *testing.T) {
	t.Run("ctrl+c quits", func(t *testing.T) {
		root, _ := newTestRoot(&fakeSessions{})

		root, cmd := update(t, root, keyOf(tea.KeyCtrlC))

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, root.quitByUser)
	})

	t.Run("ctrl+v toggles build info", func(t *testing.T) {
		root, stubs := newTestRoot(&fakeSessions{})
		root, _ = update(t, root, NavigateTo{Page: WelcomePath})

		root, _ = update(t, root, keyOf(tea.KeyCtrlV))
		assert.Contains(t, root.View(), "SOBRE")
		assert.Contains(t, root.View(), "abc123")

		root, _ = update(t, root, runes("x"))
		assert.Empty(t, stubs[WelcomePath].got, "keys are swallowed while the overlay is open")

		root, _ = update(t, root, keyOf(tea.KeyEsc))
		assert.Equal(t, WelcomePath, root.View())
	})

	t.Run("other keys reach the page", func(t *testing.T) {
		root, stubs := newTestRoot(&fakeSessions{})
		root, _ = update(t, root, NavigateTo{Page: WelcomePath})

		_, _ = update(t, root, runes("j"))

		require.Len(t, stubs[WelcomePath].got, 1)
		assert.Equal(t, runes("j"), stubs[WelcomePath].got[0])
	})
}

func TestStatusLine(t *testing.T) {
	assert.Empty(t, statusLine{}.View())
	assert.Contains(t, newStatus(nil, "feito").View(), "OK: feito")
	assert.Contains(t, newStatus(errors.New("boom"), "").View(), "Erro: ")
	assert.Contains(t, errorStatus("falhou").View(), "Erro: falhou")
}
