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

// ideaRepository is the PostgreSQL implementation of [IdeaRepository].
type ideaRepository struct {
	*DB
	logger *logger.Logger
}

// NewIdeaRepository constructs an [IdeaRepository].
func NewIdeaRepository(db *DB, logger *logger.Logger) IdeaRepository {
	logger.Debug().Msg("creating idea repository")
	return &ideaRepository{DB: db, logger: logger}
}

// ListIdeas returns the ideas matching query, newest first.
//
// Rows with an unknown category or status are skipped and logged instead of
// failing the whole listing.
func (r *ideaRepository) ListIdeas(ctx context.Context, query IdeaQuery) ([]models.Idea, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListIdeasQuery(query)
	if err != nil {
		log.Err(err).Str("func", "*ideaRepository.ListIdeas").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*ideaRepository.ListIdeas").
			Str("owner_id", query.OwnerID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}
	defer rows.Close()

	ideas := make([]models.Idea, 0, 32)
	for rows.Next() {
		idea, err := scanIdea(rows)
		if errors.Is(err, ErrMalformedRecord) {
			log.Warn().Err(err).Str("func", "*ideaRepository.ListIdeas").Msg("skipping malformed idea")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*ideaRepository.ListIdeas").Msg("failed to scan idea")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.classify(err))
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.classify(err))
	}

	return ideas, nil
}

// CreateIdea inserts the idea and returns the stored row, including the
// server-assigned creation time.
func (r *ideaRepository) CreateIdea(ctx context.Context, idea models.Idea) (models.Idea, error) {
	row := r.QueryRowContext(ctx, createIdea,
		idea.ID,
		idea.Title,
		idea.Description,
		string(idea.Category),
		string(idea.Status),
		idea.Impact,
		idea.UserID,
		nullString(idea.FileURL),
		nullString(idea.FileName),
	)

	created, err := scanIdea(row)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*ideaRepository.CreateIdea").
			Str("user_id", idea.UserID).
			Msg("failed to insert idea")
		return models.Idea{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	return created, nil
}

// UpdateStatus applies the transition atomically. When no row matches, the
// current status is read to tell [ErrIdeaNotFound] from
// [ErrStatusTransition].
func (r *ideaRepository) UpdateStatus(ctx context.Context, ideaID string, status models.IdeaStatus) (models.Idea, bool, error) {
	log := logger.FromContext(ctx)

	var previous string
	idea, err := scanIdea(r.QueryRowContext(ctx, updateIdeaStatus, string(status), ideaID), &previous)
	if err == nil {
		return idea, previous != string(status), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*ideaRepository.UpdateStatus").Str("idea_id", ideaID).Msg("failed to update status")
		return models.Idea{}, false, fmt.Errorf("%w: %w", ErrExecutingStatement, r.classify(err))
	}

	var current string
	err = r.QueryRowContext(ctx, getIdeaStatus, ideaID).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Idea{}, false, ErrIdeaNotFound
	case err != nil:
		return models.Idea{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, r.classify(err))
	}

	log.Info().
		Str("idea_id", ideaID).
		Str("from", current).
		Str("to", string(status)).
		Msg("rejected status transition")
	return models.Idea{}, false, fmt.Errorf("%w: %s to %s", ErrStatusTransition, current, status)
}
