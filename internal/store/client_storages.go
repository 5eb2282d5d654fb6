// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eco-ideas/internal/config"
	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// ClientStorages groups the client-side storage.
type ClientStorages struct {
	State LocalStateRepository

	db *DB
}

// NewClientStorages opens the state file named by cfg.DSN, migrates it and
// wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("state file connection error: %w", err)
	}

	if err := db.MigrateLocal(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		State: NewLocalStateRepository(db, logger),
		db:    db,
	}, nil
}

// Close releases the state file.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
