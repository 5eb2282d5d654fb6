// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/eco-ideas/internal/logger"
)

// NewConnectSQLite opens the client state file, creating it when absent.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening state file")
		return nil, fmt.Errorf("error opening connection to state file: %w", err)
	}

	// sqlite3 serializes writers; one connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting state file (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging state file: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("opened state file successfully")

	return &DB{DB: conn, logger: log}, nil
}
