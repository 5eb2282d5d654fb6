// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/gate"
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// RootModel is the TUI router:
//  1. keeps the active page and its path
//  2. runs every navigation through the authorization gate
//  3. follows session changes (sign-out, role resolved)
//  4. delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	sessions service.SessionStore

	pages   map[string]tea.Model
	current tea.Model
	path    string
	loading tea.Model

	// pending is the navigation requested while the session was loading.
	pending  *NavigateTo
	// returnTo is the page requested before a sign-in whose role is not
	// known yet.
	returnTo *returnAfterProfile

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers the pages and shows the loading page until the
// session is restored.
func NewRootModel(ctx context.Context, sessions service.SessionStore, pages map[string]tea.Model, buildInfo models.AppBuildInfo) RootModel {
	loading := newLoadingModel()
	return RootModel{
		ctx:       ctx,
		sessions:  sessions,
		pages:     pages,
		current:   loading,
		loading:   loading,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	ctx, sessions := r.ctx, r.sessions
	return func() tea.Msg {
		return restoreDoneMsg{err: sessions.Restore(ctx)}
	}
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "ctrl+v":
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}
		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case returnAfterProfile:
		r.returnTo = &msg
		return r.navigate(NavigateTo{Page: msg.Page})

	case restoreDoneMsg:
		if r.pending != nil {
			nav := *r.pending
			r.pending = nil
			return r.navigate(nav)
		}
		start := NavigateTo{Page: r.startPath()}
		if msg.err != nil {
			start.Payload = notice{Text: service.Reason(msg.err)}
		}
		return r.navigate(start)

	case sessionChangedMsg:
		return r.onSessionChange(msg)

	case signOutDoneMsg:
		return r.navigate(NavigateTo{Page: WelcomePath, Payload: notice{Text: "Sessão encerrada."}})
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("ECO-IDEIAS", "", "")
	}
	return r.current.View()
}

// Path returns the path of the active page.
func (r RootModel) Path() string {
	return r.path
}

func (r RootModel) gateState() gate.State {
	state := gate.State{Loading: r.sessions.Loading()}
	if _, ok := r.sessions.CurrentSession(); ok {
		state.Authenticated = true
		if p, ok := r.sessions.CurrentPrincipal(); ok {
			state.Role = p.Role
		}
	}
	return state
}

func (r RootModel) startPath() string {
	state := r.gateState()
	if state.Authenticated {
		return gate.Home(state.Role)
	}
	return WelcomePath
}

func isPublic(path string) bool {
	return path == WelcomePath || path == gate.LoginPath || path == SignUpPath
}

// navigate opens nav.Page if the gate allows it, and the redirect target
// otherwise.
func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	if !isPublic(nav.Page) {
		d := gate.DecidePath(r.gateState(), nav.Page)
		switch d.Kind {
		case gate.Wait:
			r.pending = &nav
			r.current, r.path = r.loading, ""
			return r, nil
		case gate.RedirectLogin:
			nav = NavigateTo{Page: d.Target, Payload: loginFrom{From: d.From}}
		case gate.RedirectRoleHome:
			nav = NavigateTo{Page: d.Target}
		}
	}

	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.current, r.path = next, nav.Page

	cmds := []tea.Cmd{next.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Sequence(cmds...)
}

func (r RootModel) onSessionChange(msg sessionChangedMsg) (tea.Model, tea.Cmd) {
	switch msg.change.Kind {
	case service.SessionSignedOut:
		r.returnTo = nil
		if !isPublic(r.path) {
			return r.navigate(NavigateTo{Page: WelcomePath, Payload: notice{Text: "Sua sessão expirou. Faça login novamente."}})
		}
		return r, nil

	case service.SessionProfileResolved:
		if ret := r.returnTo; ret != nil {
			r.returnTo = nil
			if r.path == ret.Page {
				if target := gate.LoginReturn(ret.From, r.gateState().Role); target != r.path {
					return r.navigate(NavigateTo{Page: target})
				}
			}
		}
		// the authoritative role may differ from the provisional one
		if r.path != "" && !isPublic(r.path) {
			if d := gate.DecidePath(r.gateState(), r.path); d.Kind != gate.Allow {
				return r.navigate(NavigateTo{Page: r.path})
			}
		}
	}

	if r.current == nil {
		return r, nil
	}
	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

type loadingModel struct{}

func newLoadingModel() *loadingModel { return &loadingModel{} }

func (m *loadingModel) Init() tea.Cmd { return nil }

func (m *loadingModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m *loadingModel) View() string {
	return renderPage("ECO-IDEIAS", "Carregando sessão...", "")
}
