// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository].
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{db: db, logger: logger}
}

// ListCategories returns the registry. Rows with names outside the known
// categories are skipped.
func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.CategoryInfo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("failed to list categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	categories := make([]models.CategoryInfo, 0, len(models.Categories))
	for rows.Next() {
		var (
			c    models.CategoryInfo
			name string
		)
		if err := rows.Scan(&c.ID, &name, &c.DisplayName, &c.Unit, &c.Description, &c.HasGoals); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
		}

		if c.Name, err = models.ParseCategory(name); err != nil {
			log.Warn().Err(err).Str("func", "*categoryRepository.ListCategories").Msg("skipping unknown category")
			continue
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, r.db.classify(err))
	}

	return categories, nil
}
