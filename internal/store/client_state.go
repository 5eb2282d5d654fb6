// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/models"
)

const (
	stateKeySession   = "session"
	stateKeyPrincipal = "principal"

	upsertState = `INSERT INTO client_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`
	selectState = `SELECT value FROM client_state WHERE key = ?;`
	clearState  = `DELETE FROM client_state;`
)

// localStateRepository persists the client session and the last known
// principal as JSON values of the client_state table.
type localStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalStateRepository constructs a [LocalStateRepository] on the client
// state file.
func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{db: db, logger: logger}
}

func (r *localStateRepository) SaveSession(ctx context.Context, session models.Session) error {
	return r.put(ctx, stateKeySession, session)
}

func (r *localStateRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.get(ctx, stateKeySession, &session)
	return session, err
}

func (r *localStateRepository) SavePrincipal(ctx context.Context, principal models.Principal) error {
	return r.put(ctx, stateKeyPrincipal, principal)
}

func (r *localStateRepository) LoadPrincipal(ctx context.Context) (models.Principal, error) {
	var principal models.Principal
	err := r.get(ctx, stateKeyPrincipal, &principal)
	return principal, err
}

// Clear removes every stored value.
func (r *localStateRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearState); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localStateRepository) put(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if _, err := r.db.ExecContext(ctx, upsertState, key, string(data)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localStateRepository.put").Str("key", key).Msg("failed to save state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localStateRepository) get(ctx context.Context, key string, v any) error {
	var raw string
	err := r.db.QueryRowContext(ctx, selectState, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrLocalStateNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedRecord, key, err)
	}
	return nil
}
