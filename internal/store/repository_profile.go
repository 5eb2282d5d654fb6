// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository].
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{db: db, logger: logger}
}

func (r *profileRepository) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, getProfile, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.GetProfile").
			Str("user_id", userID).
			Msg("error reading profile")
		return models.Profile{}, r.wrap(err)
	}
	return p, nil
}

// GetProfiles returns the profiles that exist among userIDs, in no
// particular order. Unknown ids are skipped.
func (r *profileRepository) GetProfiles(ctx context.Context, userIDs []string) ([]models.Profile, error) {
	if len(userIDs) == 0 {
		return []models.Profile{}, nil
	}

	query, args, err := buildGetProfilesQuery(userIDs)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.GetProfiles").
			Int("ids", len(userIDs)).
			Msg("error querying profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	return r.collect(rows)
}

// CreateProfile inserts the profile unless one already exists for the user,
// in which case [ErrProfileAlreadyExists] is returned.
func (r *profileRepository) CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	created, err := scanProfile(r.db.QueryRowContext(ctx, createProfile, profile.UserID, profile.Name, profile.Email, string(profile.Role)))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.CreateProfile").
			Str("user_id", profile.UserID).
			Msg("error creating profile")
		return models.Profile{}, r.wrap(err)
	}
	return created, nil
}

func (r *profileRepository) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.db.QueryContext(ctx, listProfiles)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileRepository.ListProfiles").Msg("error listing profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *profileRepository) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	p, err := scanProfile(r.db.QueryRowContext(ctx, updateRole, string(role), userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileRepository.UpdateRole").
			Str("user_id", userID).
			Msg("error updating role")
		return models.Profile{}, r.wrap(err)
	}
	return p, nil
}

func (r *profileRepository) collect(rows *sql.Rows) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, r.wrapRows(err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}
	return profiles, nil
}

func (r *profileRepository) wrap(err error) error {
	if errors.Is(err, ErrMalformedRecord) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
}

func (r *profileRepository) wrapRows(err error) error {
	if errors.Is(err, ErrMalformedRecord) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
}
