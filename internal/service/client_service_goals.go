// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/MKhiriev/eco-ideas/internal/adapter"
	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

type goalStore struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger

	mu         sync.RWMutex
	goals      map[models.GoalKey]models.Goal
	categories []models.CategoryInfo
}

// NewGoalStore returns an empty store. Until Load succeeds Get answers with
// the built-in defaults.
func NewGoalStore(serverAdapter adapter.ServerAdapter, logger *logger.Logger) GoalStore {
	return &goalStore{
		adapter:   serverAdapter,
		validator: validators.NewIdeaValidator(),
		logger:    logger,
		goals:     make(map[models.GoalKey]models.Goal),
	}
}

func (s *goalStore) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	categories, err := s.adapter.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", mapAdapterError(err))
	}
	goals, err := s.adapter.ListGoals(ctx)
	if err != nil {
		return fmt.Errorf("load goals: %w", mapAdapterError(err))
	}

	byKey := make(map[models.GoalKey]models.Goal, len(goals))
	for _, g := range goals {
		if !wellFormedGoal(g) {
			log.Warn().
				Str("category", string(g.Category)).
				Str("period", string(g.Period)).
				Float64("value", g.Value).
				Msg("malformed goal dropped")
			continue
		}
		byKey[g.GoalKey] = g
	}

	s.mu.Lock()
	s.goals = byKey
	s.categories = categories
	s.mu.Unlock()

	log.Debug().Int("goals", len(byKey)).Int("categories", len(categories)).Msg("goals loaded")
	return nil
}

func wellFormedGoal(g models.Goal) bool {
	return g.Category.Valid() && g.Period.Valid() &&
		!math.IsNaN(g.Value) && !math.IsInf(g.Value, 0) && g.Value > 0
}

func (s *goalStore) Get(category models.Category, period models.Period) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if g, ok := s.goals[models.GoalKey{Category: category, Period: period}]; ok {
		return g.Value
	}
	return models.DefaultGoal(category, period)
}

// Goals returns the stored goals in category then period order.
func (s *goalStore) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Goal, 0, len(s.goals))
	for _, c := range models.Categories {
		for _, key := range models.GoalKeysFor(c) {
			if g, ok := s.goals[key]; ok {
				out = append(out, g)
			}
		}
	}
	return out
}

func (s *goalStore) Categories() []models.CategoryInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

func (s *goalStore) Registry() models.CategoryRegistry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.NewCategoryRegistry(s.categories)
}

func (s *goalStore) SetMany(ctx context.Context, updates []models.GoalUpdate) []GoalFailure {
	log := logger.FromContext(ctx)

	var failures []GoalFailure
	valid := make([]models.GoalUpdate, 0, len(updates))
	for _, u := range updates {
		if err := s.validator.Validate(ctx, u); err != nil {
			failures = append(failures, goalFailure(u.GoalKey, err))
			continue
		}
		valid = append(valid, u)
	}
	if len(valid) == 0 {
		return failures
	}

	results, err := s.adapter.UpdateGoals(ctx, valid)
	if err != nil {
		mapped := mapAdapterError(err)
		log.Err(err).Int("updates", len(valid)).Msg("goal update request failed")
		for _, u := range valid {
			failures = append(failures, goalFailure(u.GoalKey, mapped))
		}
		return failures
	}

	failed := make(map[models.GoalKey]string, len(results))
	for _, r := range results {
		if r.Error != "" {
			failed[r.GoalKey] = r.Error
		}
	}

	s.mu.Lock()
	for _, u := range valid {
		if msg, ok := failed[u.GoalKey]; ok {
			failures = append(failures, goalFailure(u.GoalKey, goalResultError(msg)))
			continue
		}
		g := s.goals[u.GoalKey]
		g.GoalKey = u.GoalKey
		g.Value = u.Value
		s.goals[u.GoalKey] = g
	}
	s.mu.Unlock()

	if len(failures) > 0 {
		log.Warn().Int("failed", len(failures)).Int("requested", len(updates)).Msg("some goals were not updated")
	}
	return failures
}

func goalFailure(key models.GoalKey, err error) GoalFailure {
	return GoalFailure{Key: key, Reason: Reason(err), Err: err}
}

// goalResultError turns a per-key server message into a client error.
func goalResultError(msg string) error {
	var kind error
	switch msg {
	case app.MsgGoalNotFound:
		kind = ErrNotFound
	case app.MsgInvalidDataProvided:
		kind = validators.ErrValidation
	default:
		kind = ErrBackendUnavailable
	}
	return fmt.Errorf("%w: %s", kind, msg)
}

func (s *goalStore) ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("activate category: %w", validators.ErrInvalidCategory)
	}

	goals, err := s.adapter.ActivateCategoryGoals(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("activate category: %w", mapAdapterError(err))
	}

	s.mu.Lock()
	for _, g := range goals {
		if wellFormedGoal(g) {
			s.goals[g.GoalKey] = g
		}
	}
	s.setHasGoalsLocked(category, true)
	s.mu.Unlock()

	logger.FromContext(ctx).Info().Str("category", string(category)).Msg("category goals activated")
	return goals, nil
}

func (s *goalStore) DeactivateCategory(ctx context.Context, category models.Category) error {
	if !category.Valid() {
		return fmt.Errorf("deactivate category: %w", validators.ErrInvalidCategory)
	}

	if err := s.adapter.DeactivateCategoryGoals(ctx, category); err != nil {
		mapped := mapAdapterError(err)
		if !errors.Is(mapped, ErrNotFound) {
			return fmt.Errorf("deactivate category: %w", mapped)
		}
	}

	s.mu.Lock()
	for _, key := range models.GoalKeysFor(category) {
		delete(s.goals, key)
	}
	s.setHasGoalsLocked(category, false)
	s.mu.Unlock()

	logger.FromContext(ctx).Info().Str("category", string(category)).Msg("category goals deactivated")
	return nil
}

func (s *goalStore) setHasGoalsLocked(category models.Category, has bool) {
	for i := range s.categories {
		if s.categories[i].Name == category {
			s.categories[i].HasGoals = has
		}
	}
}

func (s *goalStore) Clear() {
	s.mu.Lock()
	s.goals = make(map[models.GoalKey]models.Goal)
	s.categories = nil
	s.mu.Unlock()
}
