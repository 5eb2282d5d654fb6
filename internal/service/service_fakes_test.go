// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/models"
)

// ─────────────────────────────────────────────
// Function-field fakes for store interfaces
// ─────────────────────────────────────────────

type fakeAccounts struct {
	createFn    func(ctx context.Context, account models.Account, profile models.Profile) error
	findEmailFn func(ctx context.Context, email string) (models.Account, error)
	findIDFn    func(ctx context.Context, userID string) (models.Account, error)
}

func (f *fakeAccounts) CreateAccount(ctx context.Context, account models.Account, profile models.Profile) error {
	if f.createFn != nil {
		return f.createFn(ctx, account, profile)
	}
	return nil
}

func (f *fakeAccounts) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	if f.findEmailFn != nil {
		return f.findEmailFn(ctx, email)
	}
	return models.Account{}, store.ErrAccountNotFound
}

func (f *fakeAccounts) FindAccountByID(ctx context.Context, userID string) (models.Account, error) {
	if f.findIDFn != nil {
		return f.findIDFn(ctx, userID)
	}
	return models.Account{}, store.ErrAccountNotFound
}

// memSessions is an in-memory SessionRepository.
type memSessions struct {
	mu       sync.Mutex
	sessions map[string]models.RefreshSession
	ttls     map[string]time.Duration
	saveErr  error
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]models.RefreshSession{}, ttls: map[string]time.Duration{}}
}

func (m *memSessions) SaveSession(_ context.Context, token string, s models.RefreshSession, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[token] = s
	m.ttls[token] = ttl
	return nil
}

func (m *memSessions) LookupSession(_ context.Context, token string) (models.RefreshSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return models.RefreshSession{}, store.ErrSessionNotFound
	}
	return s, nil
}

func (m *memSessions) ConsumeSession(_ context.Context, token string) (models.RefreshSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return models.RefreshSession{}, store.ErrSessionNotFound
	}
	delete(m.sessions, token)
	return s, nil
}

func (m *memSessions) RevokeSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

type fakeProfiles struct {
	getFn     func(ctx context.Context, userID string) (models.Profile, error)
	getManyFn func(ctx context.Context, ids []string) ([]models.Profile, error)
	createFn  func(ctx context.Context, p models.Profile) (models.Profile, error)
	listFn    func(ctx context.Context) ([]models.Profile, error)
	roleFn    func(ctx context.Context, userID string, role models.Role) (models.Profile, error)
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	if f.getFn != nil {
		return f.getFn(ctx, userID)
	}
	return models.Profile{}, store.ErrProfileNotFound
}

func (f *fakeProfiles) GetProfiles(ctx context.Context, ids []string) ([]models.Profile, error) {
	if f.getManyFn != nil {
		return f.getManyFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeProfiles) CreateProfile(ctx context.Context, p models.Profile) (models.Profile, error) {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return p, nil
}

func (f *fakeProfiles) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeProfiles) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	if f.roleFn != nil {
		return f.roleFn(ctx, userID, role)
	}
	return models.Profile{UserID: userID, Role: role}, nil
}

type fakeIdeas struct {
	listFn   func(ctx context.Context, q store.IdeaQuery) ([]models.Idea, error)
	createFn func(ctx context.Context, idea models.Idea) (models.Idea, error)
	statusFn func(ctx context.Context, id string, status models.IdeaStatus) (models.Idea, bool, error)
}

func (f *fakeIdeas) ListIdeas(ctx context.Context, q store.IdeaQuery) ([]models.Idea, error) {
	if f.listFn != nil {
		return f.listFn(ctx, q)
	}
	return nil, nil
}

func (f *fakeIdeas) CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error) {
	if f.createFn != nil {
		return f.createFn(ctx, idea)
	}
	return idea, nil
}

func (f *fakeIdeas) UpdateStatus(ctx context.Context, id string, status models.IdeaStatus) (models.Idea, bool, error) {
	if f.statusFn != nil {
		return f.statusFn(ctx, id, status)
	}
	return models.Idea{ID: id, Status: status}, true, nil
}

type fakeNotifications struct {
	mu      sync.Mutex
	created []models.Notification
	err     error
}

func (f *fakeNotifications) CreateNotification(_ context.Context, n models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotifications) ListNotifications(_ context.Context, userID string) ([]models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, 0)
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type fakeGoals struct {
	listFn       func(ctx context.Context) ([]models.Goal, error)
	updateFn     func(ctx context.Context, u models.GoalUpdate) error
	activateFn   func(ctx context.Context, c models.Category) ([]models.Goal, error)
	deactivateFn func(ctx context.Context, c models.Category) error
}

func (f *fakeGoals) ListGoals(ctx context.Context) ([]models.Goal, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeGoals) UpdateGoal(ctx context.Context, u models.GoalUpdate) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeGoals) ActivateCategory(ctx context.Context, c models.Category) ([]models.Goal, error) {
	if f.activateFn != nil {
		return f.activateFn(ctx, c)
	}
	return nil, nil
}

func (f *fakeGoals) DeactivateCategory(ctx context.Context, c models.Category) error {
	if f.deactivateFn != nil {
		return f.deactivateFn(ctx, c)
	}
	return nil
}

type fakeCategories struct {
	categories []models.CategoryInfo
	err        error
}

func (f *fakeCategories) ListCategories(context.Context) ([]models.CategoryInfo, error) {
	return f.categories, f.err
}

type fakeAttachmentStorage struct {
	key  string
	body string
	err  error
}

func (f *fakeAttachmentStorage) PutAttachment(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.key, f.body = key, string(data)
	return "https://cdn.test/idea-attachments/" + key, nil
}

func (f *fakeAttachmentStorage) AttachmentKey(publicURL string) (string, bool) {
	return strings.CutPrefix(publicURL, "https://cdn.test/idea-attachments/")
}

// sequenceIDs returns id-1, id-2, ...
type sequenceIDs struct {
	mu sync.Mutex
	n  int
}

func (s *sequenceIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}
