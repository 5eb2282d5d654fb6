// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

type fakeSessions struct {
	loading    bool
	session    *models.Session
	principal  *models.Principal
	restoreErr error

	signIn  func(email, password string) error
	signUp  func(email, password, name string) error
	signOut int
}

func (f *fakeSessions) Restore(context.Context) error {
	f.loading = false
	return f.restoreErr
}

func (f *fakeSessions) Loading() bool { return f.loading }

func (f *fakeSessions) CurrentSession() (models.Session, bool) {
	if f.session == nil {
		return models.Session{}, false
	}
	return *f.session, true
}

func (f *fakeSessions) CurrentPrincipal() (models.Principal, bool) {
	if f.principal == nil {
		return models.Principal{}, false
	}
	return *f.principal, true
}

func (f *fakeSessions) Generation() uint64 { return 1 }

func (f *fakeSessions) Subscribe(func(service.SessionChange)) func() { return func() {} }

func (f *fakeSessions) SignIn(_ context.Context, email, password string) error {
	if f.signIn == nil {
		return nil
	}
	return f.signIn(email, password)
}

func (f *fakeSessions) SignUp(_ context.Context, email, password, name string) error {
	if f.signUp == nil {
		return nil
	}
	return f.signUp(email, password, name)
}

func (f *fakeSessions) SignOut(context.Context) error {
	f.signOut++
	f.session, f.principal = nil, nil
	return nil
}

func (f *fakeSessions) RefreshToken(context.Context) error { return nil }

func (f *fakeSessions) IsAdministrator() bool {
	return f.principal != nil && f.principal.IsAdmin()
}

func (f *fakeSessions) Wait() {}

// signedIn puts f in the authenticated state with role.
func (f *fakeSessions) signedIn(id string, role models.Role) *fakeSessions {
	f.session = &models.Session{UserID: id, AccessToken: "access", ExpiresAt: time.Now().Add(time.Hour)}
	f.principal = &models.Principal{ID: id, Name: "Ana", Role: role}
	return f
}

type fakeIdeas struct {
	ideas        []models.Idea
	refreshErr   error
	updateStatus func(id string, status models.IdeaStatus) (models.Idea, error)
	create       func(draft models.IdeaDraft) (models.Idea, error)
}

func (f *fakeIdeas) Refresh(context.Context) error { return f.refreshErr }

func (f *fakeIdeas) Create(_ context.Context, draft models.IdeaDraft) (models.Idea, error) {
	return f.create(draft)
}

func (f *fakeIdeas) UpdateStatus(_ context.Context, id string, status models.IdeaStatus) (models.Idea, error) {
	return f.updateStatus(id, status)
}

func (f *fakeIdeas) ForUser(id string) []models.Idea {
	var out []models.Idea
	for _, idea := range f.ideas {
		if idea.UserID == id {
			out = append(out, idea)
		}
	}
	return out
}

func (f *fakeIdeas) All() []models.Idea { return slices.Clone(f.ideas) }

func (f *fakeIdeas) Filter(filter models.IdeaFilter) []models.Idea {
	var out []models.Idea
	for _, idea := range f.ideas {
		if filter.Status != "" && idea.Status != filter.Status {
			continue
		}
		if filter.Category != "" && idea.Category != filter.Category {
			continue
		}
		out = append(out, idea)
	}
	return out
}

func (f *fakeIdeas) Watch(context.Context) func() { return func() {} }

func (f *fakeIdeas) Wait() {}

type fakeGoals struct {
	categories []models.CategoryInfo
	values     map[models.GoalKey]float64
	setMany    func(updates []models.GoalUpdate) []service.GoalFailure
	activated  []models.Category
}

func (f *fakeGoals) Load(context.Context) error { return nil }

func (f *fakeGoals) Get(c models.Category, p models.Period) float64 {
	if v, ok := f.values[models.GoalKey{Category: c, Period: p}]; ok {
		return v
	}
	return models.DefaultGoal(c, p)
}

func (f *fakeGoals) Goals() []models.Goal { return nil }

func (f *fakeGoals) Categories() []models.CategoryInfo { return slices.Clone(f.categories) }

func (f *fakeGoals) Registry() models.CategoryRegistry { return models.NewCategoryRegistry(f.categories) }

func (f *fakeGoals) DeactivateCategory(context.Context, models.Category) error { return nil }

func (f *fakeGoals) Clear() {}

func (f *fakeGoals) SetMany(_ context.Context, updates []models.GoalUpdate) []service.GoalFailure {
	return f.setMany(updates)
}

func (f *fakeGoals) ActivateCategory(_ context.Context, c models.Category) ([]models.Goal, error) {
	f.activated = append(f.activated, c)
	return nil, nil
}

type fakeUsers struct {
	users   []models.Profile
	setRole func(id string, role models.Role) (models.Profile, error)
}

func (f *fakeUsers) ListUsers(context.Context) ([]models.Profile, error) { return f.users, nil }

func (f *fakeUsers) SetRole(_ context.Context, id string, role models.Role) (models.Profile, error) {
	return f.setRole(id, role)
}

type assistantFunc func(message string) (string, error)

func (f assistantFunc) Ask(_ context.Context, message string) (string, error) { return f(message) }

func newTestServices(sessions *fakeSessions) (*service.ClientServices, *fakeIdeas, *fakeGoals) {
	ideas := &fakeIdeas{}
	goals := &fakeGoals{values: map[models.GoalKey]float64{}}
	return &service.ClientServices{
		Sessions: sessions,
		Ideas:    ideas,
		Goals:    goals,
		Users:    &fakeUsers{},
	}, ideas, goals
}

// stubPage records what the router hands to it.
type stubPage struct {
	name  string
	inits int
	got   []tea.Msg
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.got = append(p.got, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
