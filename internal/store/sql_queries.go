// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/eco-ideas/models"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	ideaColumns    = []string{"id", "title", "description", "category", "status", "impact", "user_id", "file_url", "file_name", "created_at"}
	profileColumns = []string{"user_id", "name", "email", "role", "created_at"}
)

const (
	createAccount = `INSERT INTO accounts (user_id, email, password_hash)
		VALUES ($1, $2, $3);`

	findAccountByEmail = `SELECT user_id, email, password_hash, created_at
		FROM accounts
		WHERE lower(email) = lower($1);`

	findAccountByID = `SELECT user_id, email, password_hash, created_at
		FROM accounts
		WHERE user_id = $1;`

	createProfile = `INSERT INTO profiles (user_id, name, email, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING user_id, name, email, role, created_at;`

	getProfile = `SELECT user_id, name, email, role, created_at
		FROM profiles
		WHERE user_id = $1;`

	listProfiles = `SELECT user_id, name, email, role, created_at
		FROM profiles
		ORDER BY created_at DESC;`

	updateRole = `UPDATE profiles SET role = $1
		WHERE user_id = $2
		RETURNING user_id, name, email, role, created_at;`

	createIdea = `INSERT INTO ideas (id, title, description, category, status, impact, user_id, file_url, file_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, title, description, category, status, impact, user_id, file_url, file_name, created_at;`

	// updateIdeaStatus only matches when the transition is allowed: from
	// pending, or to the status the idea already has.
	updateIdeaStatus = `WITH prev AS (
			SELECT id, status FROM ideas WHERE id = $2 FOR UPDATE
		)
		UPDATE ideas AS i SET status = $1
		FROM prev
		WHERE i.id = prev.id AND (prev.status = 'pending' OR prev.status = $1)
		RETURNING i.id, i.title, i.description, i.category, i.status, i.impact, i.user_id, i.file_url, i.file_name, i.created_at, prev.status;`

	getIdeaStatus = `SELECT status FROM ideas WHERE id = $1;`

	listCategories = `SELECT id, name, display_name, unit, description, has_goals
		FROM categories
		ORDER BY name;`

	listGoals = `SELECT key, value, description
		FROM settings
		WHERE key LIKE 'goal\_%'
		ORDER BY key;`

	updateGoal = `UPDATE settings SET value = $1, updated_at = NOW()
		WHERE key = $2;`

	setCategoryTracked = `UPDATE categories SET has_goals = $1
		WHERE name = $2
		RETURNING display_name, unit;`

	getSetting = `SELECT value, description FROM settings WHERE key = $1;`

	insertGoalIfMissing = `INSERT INTO settings (key, value, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO NOTHING;`

	createNotification = `INSERT INTO notifications (id, user_id, title, message, type)
		VALUES ($1, $2, $3, $4, $5);`

	listNotifications = `SELECT id, user_id, title, message, type, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 50;`
)

// buildListIdeasQuery returns ideas newest first, optionally restricted to one
// owner, status or category.
func buildListIdeasQuery(q IdeaQuery) (string, []any, error) {
	b := psql.Select(ideaColumns...).
		From(models.Idea{}.TableName()).
		OrderBy("created_at DESC", "id DESC")

	if q.OwnerID != "" {
		b = b.Where(squirrel.Eq{"user_id": q.OwnerID})
	}
	if q.Status != "" {
		b = b.Where(squirrel.Eq{"status": string(q.Status)})
	}
	if q.Category != "" {
		b = b.Where(squirrel.Eq{"category": string(q.Category)})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetProfilesQuery selects the profiles of every id in one statement.
func buildGetProfilesQuery(userIDs []string) (string, []any, error) {
	query, args, err := psql.Select(profileColumns...).
		From(models.Profile{}.TableName()).
		Where(squirrel.Eq{"user_id": userIDs}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildDeleteGoalsQuery deletes the given setting keys.
func buildDeleteGoalsQuery(keys []models.GoalKey) (string, []any, error) {
	raw := make([]string, 0, len(keys))
	for _, k := range keys {
		raw = append(raw, k.SettingKey())
	}

	query, args, err := psql.Delete("settings").
		Where(squirrel.Eq{"key": raw}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
