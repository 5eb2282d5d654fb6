// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/store"
	"github.com/MKhiriev/eco-ideas/internal/validators"
	"github.com/MKhiriev/eco-ideas/models"
)

type goalService struct {
	goals      store.GoalRepository
	categories store.CategoryRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewGoalService(goals store.GoalRepository, categories store.CategoryRepository, logger *logger.Logger) GoalService {
	return &goalService{
		goals:      goals,
		categories: categories,
		validator:  validators.NewIdeaValidator(),
		logger:     logger,
	}
}

func (s *goalService) ListGoals(ctx context.Context) ([]models.Goal, error) {
	return s.goals.ListGoals(ctx)
}

// UpdateGoals never stops at the first failure: every update gets its own
// result, with Error set to a wire message when it was not applied.
func (s *goalService) UpdateGoals(ctx context.Context, updates []models.GoalUpdate) []models.GoalUpdateResult {
	log := logger.FromContext(ctx)
	results := make([]models.GoalUpdateResult, 0, len(updates))

	for _, u := range updates {
		result := models.GoalUpdateResult{GoalKey: u.GoalKey}

		if err := s.validator.Validate(ctx, u); err != nil {
			result.Error = app.MsgInvalidDataProvided
		} else if err := s.goals.UpdateGoal(ctx, u); err != nil {
			log.Err(err).Str("key", u.SettingKey()).Msg("goal update failed")
			result.Error = goalErrorMessage(err)
		}

		results = append(results, result)
	}

	return results
}

func (s *goalService) ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCategory)
	}

	goals, err := s.goals.ActivateCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Str("category", string(category)).Msg("category goals activated")
	return goals, nil
}

func (s *goalService) DeactivateCategory(ctx context.Context, category models.Category) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCategory)
	}

	if err := s.goals.DeactivateCategory(ctx, category); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("category", string(category)).Msg("category goals deactivated")
	return nil
}

// ReconcileGoals activates again every tracked category that lacks one of
// its period goals. Activation only inserts what is missing.
func (s *goalService) ReconcileGoals(ctx context.Context) error {
	log := logger.FromContext(ctx)

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("reconcile goals: %w", err)
	}
	goals, err := s.goals.ListGoals(ctx)
	if err != nil {
		return fmt.Errorf("reconcile goals: %w", err)
	}

	existing := make(map[models.GoalKey]struct{}, len(goals))
	for _, g := range goals {
		existing[g.GoalKey] = struct{}{}
	}

	var errs []error
	for _, c := range categories {
		if !c.HasGoals || !missingGoal(existing, c.Name) {
			continue
		}

		if _, err := s.goals.ActivateCategory(ctx, c.Name); err != nil {
			errs = append(errs, fmt.Errorf("category %s: %w", c.Name, err))
			continue
		}
		log.Info().Str("category", string(c.Name)).Msg("missing period goals re-created")
	}

	return errors.Join(errs...)
}

func missingGoal(existing map[models.GoalKey]struct{}, category models.Category) bool {
	for _, key := range models.GoalKeysFor(category) {
		if _, ok := existing[key]; !ok {
			return true
		}
	}
	return false
}

func goalErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrGoalNotFound):
		return app.MsgGoalNotFound
	case errors.Is(err, store.ErrRetryable):
		return app.MsgServiceUnavailable
	default:
		return app.MsgInternalServerError
	}
}
