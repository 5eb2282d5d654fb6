// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/eco-ideas/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanIdea reads the ideaColumns of one row. Unknown status or category
// values are rejected with ErrMalformedRecord.
func scanIdea(row rowScanner, extra ...any) (models.Idea, error) {
	var (
		idea              models.Idea
		category, status  string
		fileURL, fileName sql.NullString
	)

	dest := []any{&idea.ID, &idea.Title, &idea.Description, &category, &status, &idea.Impact, &idea.UserID, &fileURL, &fileName, &idea.CreatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return models.Idea{}, err
	}

	var err error
	if idea.Category, err = models.ParseCategory(category); err != nil {
		return models.Idea{}, fmt.Errorf("%w: idea %s: %w", ErrMalformedRecord, idea.ID, err)
	}
	if idea.Status, err = models.ParseIdeaStatus(status); err != nil {
		return models.Idea{}, fmt.Errorf("%w: idea %s: %w", ErrMalformedRecord, idea.ID, err)
	}
	if fileURL.Valid {
		idea.FileURL = &fileURL.String
	}
	if fileName.Valid {
		idea.FileName = &fileName.String
	}

	return idea, nil
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		p    models.Profile
		role string
	)
	if err := row.Scan(&p.UserID, &p.Name, &p.Email, &role, &p.CreatedAt); err != nil {
		return models.Profile{}, err
	}

	r, err := models.ParseRole(role)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: profile %s: %w", ErrMalformedRecord, p.UserID, err)
	}
	p.Role = r

	return p, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
