// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

// goalRepository stores goals as rows of the settings table keyed
// goal_{category}_{period}.
type goalRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGoalRepository constructs a [GoalRepository].
func NewGoalRepository(db *DB, logger *logger.Logger) GoalRepository {
	logger.Debug().Msg("creating goal repository")
	return &goalRepository{db: db, logger: logger}
}

// ListGoals returns every well-formed goal row. Keys or values that do not
// parse are logged and skipped.
func (r *goalRepository) ListGoals(ctx context.Context) ([]models.Goal, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listGoals)
	if err != nil {
		log.Err(err).Str("func", "*goalRepository.ListGoals").Msg("failed to list goals")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	goals := make([]models.Goal, 0, 9)
	for rows.Next() {
		var key, value, description string
		if err := rows.Scan(&key, &value, &description); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
		}

		goal, err := parseGoalRow(key, value, description)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("skipping malformed goal setting")
			continue
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return goals, nil
}

// UpdateGoal overwrites the value of an existing goal. Goals are only created
// by ActivateCategory, so a missing key yields [ErrGoalNotFound].
func (r *goalRepository) UpdateGoal(ctx context.Context, update models.GoalUpdate) error {
	res, err := r.db.ExecContext(ctx, updateGoal, formatGoalValue(update.Value), update.SettingKey())
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*goalRepository.UpdateGoal").
			Str("key", update.SettingKey()).
			Msg("failed to update goal")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *goalRepository) ActivateCategory(ctx context.Context, category models.Category) ([]models.Goal, error) {
	keys := models.GoalKeysFor(category)
	goals := make([]models.Goal, 0, len(keys))

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		displayName, unit, err := r.setTracked(ctx, tx, category, true)
		if err != nil {
			return err
		}

		for _, key := range keys {
			description := models.GoalDescription(key.Period, displayName, unit)
			value := models.DefaultGoal(key.Category, key.Period)
			if _, err := tx.ExecContext(ctx, insertGoalIfMissing, key.SettingKey(), formatGoalValue(value), description); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
			}
		}

		// Existing rows keep their values; read back what is stored.
		for _, key := range keys {
			var value, description string
			row := tx.QueryRowContext(ctx, getSetting, key.SettingKey())
			if err := row.Scan(&value, &description); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
			}
			goal, err := parseGoalRow(key.SettingKey(), value, description)
			if err != nil {
				return err
			}
			goals = append(goals, goal)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*goalRepository.ActivateCategory").
			Str("category", string(category)).
			Msg("failed to activate category goals")
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) DeactivateCategory(ctx context.Context, category models.Category) error {
	query, args, err := buildDeleteGoalsQuery(models.GoalKeysFor(category))
	if err != nil {
		return err
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, _, err := r.setTracked(ctx, tx, category, false); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*goalRepository.DeactivateCategory").
			Str("category", string(category)).
			Msg("failed to deactivate category goals")
		return err
	}

	return nil
}

func (r *goalRepository) setTracked(ctx context.Context, tx *sql.Tx, category models.Category, tracked bool) (string, string, error) {
	var displayName, unit string
	err := tx.QueryRowContext(ctx, setCategoryTracked, tracked, string(category)).Scan(&displayName, &unit)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrCategoryNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.classify(err))
	}
	return displayName, unit, nil
}

func parseGoalRow(key, value, description string) (models.Goal, error) {
	goalKey, err := models.ParseGoalKey(key)
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return models.Goal{}, fmt.Errorf("%w: goal %s value %q", ErrMalformedRecord, key, value)
	}

	return models.Goal{GoalKey: goalKey, Value: v, Description: description}, nil
}

func formatGoalValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
