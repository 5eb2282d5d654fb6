// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/utils"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

// defaultResolveTimeout bounds one background profile resolution.
const defaultResolveTimeout = 15 * time.Second

type sessionStore struct {
	adapter   adapter.ServerAdapter
	state     store.LocalStateRepository
	validator validators.Validator
	logger    *logger.Logger

	resolveTimeout time.Duration
	now            func() time.Time

	mu         sync.RWMutex
	loading    bool
	session    *models.Session
	principal  *models.Principal
	generation uint64

	// stateMu orders writes to the local state so a sign-out clear is never
	// followed by a write from an older generation.
	stateMu sync.Mutex

	subMu   sync.Mutex
	subs    map[int]func(SessionChange)
	nextSub int

	wg sync.WaitGroup
}

// NewSessionStore returns a store in the loading state; call Restore to
// leave it.
func NewSessionStore(serverAdapter adapter.ServerAdapter, state store.LocalStateRepository, logger *logger.Logger) SessionStore {
	return &sessionStore{
		adapter:        serverAdapter,
		state:          state,
		validator:      validators.NewIdeaValidator(),
		logger:         logger,
		resolveTimeout: defaultResolveTimeout,
		now:            time.Now,
		loading:        true,
		subs:           make(map[int]func(SessionChange)),
	}
}

func (s *sessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *sessionStore) CurrentSession() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

func (s *sessionStore) CurrentPrincipal() (models.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.principal == nil {
		return models.Principal{}, false
	}
	return *s.principal, true
}

func (s *sessionStore) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

func (s *sessionStore) IsAdministrator() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.principal != nil && s.principal.Role == models.RoleAdmin
}

func (s *sessionStore) Subscribe(fn func(SessionChange)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *sessionStore) Wait() {
	s.wg.Wait()
}

// Restore reads the persisted session. An expired access token is refreshed
// first; if that fails the stored session is discarded.
func (s *sessionStore) Restore(ctx context.Context) error {
	log := logger.FromContext(ctx)

	session, err := s.state.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalStateNotFound) {
		s.finishLoading()
		return nil
	}
	if err != nil {
		s.finishLoading()
		return fmt.Errorf("restore session: %w", err)
	}
	if sub, err := utils.ParseUserIDFromJWT(session.AccessToken); err == nil && sub != session.UserID {
		log.Warn().Str("user_id", session.UserID).Msg("stored session does not match its token, discarding")
		if err := s.state.Clear(ctx); err != nil {
			log.Err(err).Msg("clear local state")
		}
		s.finishLoading()
		return nil
	}

	principal, err := s.state.LoadPrincipal(ctx)
	if err != nil || principal.ID != session.UserID {
		if err != nil && !errors.Is(err, store.ErrLocalStateNotFound) {
			log.Warn().Err(err).Msg("cached principal is unreadable")
		}
		principal = models.FallbackPrincipal(session.UserID, session.Email)
	}
	principal.Provisional = true

	s.adapter.SetToken(session.AccessToken)
	change := s.establish(session, principal, SessionSignedIn)
	s.finishLoading()
	s.notify(change)

	if session.Expired(s.now()) {
		if err := s.RefreshToken(ctx); err != nil {
			log.Info().Err(err).Msg("stored session could not be refreshed")
			if _, ok := s.CurrentSession(); !ok {
				return nil
			}
		}
	}

	s.resolveProfile(ctx, change.Generation)
	return nil
}

func (s *sessionStore) SignIn(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	req := models.SignInRequest{Email: strings.TrimSpace(email), Password: password}
	if req.Email == "" || req.Password == "" {
		return fmt.Errorf("sign in: %w", validators.ErrValidation)
	}

	session, err := s.adapter.SignIn(ctx, req)
	if err != nil {
		log.Info().Err(err).Msg("sign in failed")
		return fmt.Errorf("sign in: %w", mapAdapterError(err))
	}
	s.adapter.SetToken(session.AccessToken)

	principal := models.FallbackPrincipal(session.UserID, session.Email)
	change := s.establish(session, principal, SessionSignedIn)
	s.finishLoading()
	s.persist(ctx, change.Generation, &session, &principal)
	s.notify(change)

	log.Info().Str("user_id", session.UserID).Msg("signed in")
	s.resolveProfile(ctx, change.Generation)
	return nil
}

func (s *sessionStore) SignUp(ctx context.Context, email, password, name string) error {
	req := models.SignUpRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
		Name:     strings.TrimSpace(name),
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	if _, err := s.adapter.SignUp(ctx, req); err != nil {
		return fmt.Errorf("sign up: %w", mapAdapterError(err))
	}

	logger.FromContext(ctx).Info().Msg("account created")
	return nil
}

func (s *sessionStore) SignOut(ctx context.Context) error {
	log := logger.FromContext(ctx)

	session, ok := s.CurrentSession()
	if ok {
		if err := s.adapter.SignOut(ctx, session.RefreshToken); err != nil {
			log.Warn().Err(err).Msg("server sign out failed")
		}
	}

	s.endSession(ctx)
	return nil
}

func (s *sessionStore) RefreshToken(ctx context.Context) error {
	current, ok := s.CurrentSession()
	if !ok {
		return ErrNotAuthenticated
	}

	session, err := s.adapter.Refresh(ctx, current.RefreshToken)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrNotAuthenticated) {
			logger.FromContext(ctx).Info().Msg("refresh token rejected, signing out")
			s.endSession(ctx)
		}
		return fmt.Errorf("refresh token: %w", mapped)
	}

	s.mu.Lock()
	if s.session == nil || s.session.RefreshToken != current.RefreshToken {
		// signed out or refreshed concurrently
		s.mu.Unlock()
		return nil
	}
	s.session = &session
	change := s.changeLocked(SessionTokenRefreshed)
	s.mu.Unlock()

	s.adapter.SetToken(session.AccessToken)
	s.persist(ctx, change.Generation, &session, nil)
	s.notify(change)
	return nil
}

// establish installs a new session and principal and starts a new
// generation.
func (s *sessionStore) establish(session models.Session, principal models.Principal, kind SessionChangeKind) SessionChange {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session
	s.principal = &principal
	s.generation++
	return s.changeLocked(kind)
}

func (s *sessionStore) endSession(ctx context.Context) {
	s.mu.Lock()
	hadSession := s.session != nil
	s.session = nil
	s.principal = nil
	s.generation++
	change := s.changeLocked(SessionSignedOut)
	s.mu.Unlock()

	s.adapter.SetToken("")
	s.stateMu.Lock()
	if err := s.state.Clear(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("failed to clear local state")
	}
	s.stateMu.Unlock()
	if hadSession {
		s.notify(change)
	}
}

func (s *sessionStore) finishLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// resolveProfile fetches the authoritative profile after the caller
// returns. A missing profile is backfilled; any failure keeps the
// placeholder. The result is dropped if the session changed meanwhile.
func (s *sessionStore) resolveProfile(parent context.Context, generation uint64) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), s.resolveTimeout)
		defer cancel()
		log := logger.FromContext(ctx)

		profile, err := s.adapter.GetProfile(ctx)
		if errors.Is(err, adapter.ErrNotFound) {
			profile, err = s.backfillProfile(ctx)
		}
		if err != nil {
			log.Warn().Err(err).Msg("profile resolution failed, keeping placeholder")
			return
		}

		principal := models.PrincipalFromProfile(profile)

		s.mu.Lock()
		if s.generation != generation || s.session == nil || s.session.UserID != profile.UserID {
			s.mu.Unlock()
			log.Debug().Msg("stale profile resolution discarded")
			return
		}
		s.principal = &principal
		change := s.changeLocked(SessionProfileResolved)
		s.mu.Unlock()

		s.persist(ctx, change.Generation, nil, &principal)
		s.notify(change)
	}()
}

func (s *sessionStore) backfillProfile(ctx context.Context) (models.Profile, error) {
	var name string
	if p, ok := s.CurrentPrincipal(); ok {
		name = p.Name
	}

	profile, err := s.adapter.CreateProfile(ctx, models.CreateProfileRequest{Name: name})
	if err != nil {
		return models.Profile{}, fmt.Errorf("backfill profile: %w", err)
	}
	logger.FromContext(ctx).Info().Str("user_id", profile.UserID).Msg("missing profile created")
	return profile, nil
}

// persist writes session and principal to the local state unless the
// session moved past generation in the meantime.
func (s *sessionStore) persist(ctx context.Context, generation uint64, session *models.Session, principal *models.Principal) {
	log := logger.FromContext(ctx)

	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if s.Generation() != generation {
		log.Debug().Msg("stale session state not persisted")
		return
	}
	if session != nil {
		if err := s.state.SaveSession(ctx, *session); err != nil {
			log.Err(err).Msg("failed to persist session")
		}
	}
	if principal != nil {
		if err := s.state.SavePrincipal(ctx, *principal); err != nil {
			log.Err(err).Msg("failed to persist principal")
		}
	}
}

func (s *sessionStore) changeLocked(kind SessionChangeKind) SessionChange {
	change := SessionChange{Kind: kind, Generation: s.generation}
	if s.session != nil {
		change.Authenticated = true
		change.Session = *s.session
	}
	if s.principal != nil {
		change.Principal = *s.principal
	}
	return change
}

func (s *sessionStore) notify(change SessionChange) {
	s.subMu.Lock()
	subs := make([]func(SessionChange), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(change)
	}
}
