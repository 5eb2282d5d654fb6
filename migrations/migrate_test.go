// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = MigratePostgres(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := MigratePostgres(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errNilDB)

	assert.ErrorIs(t, MigrateSQLite(nil), errNilDB)
}

func TestMigrateSQLite_CreatesStateTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateSQLite(db))
	// idempotent
	require.NoError(t, MigrateSQLite(db))

	_, err = db.Exec(`INSERT INTO client_state (key, value) VALUES ('session', '{}')`)
	assert.NoError(t, err)
}

func TestEmbeddedMigrations(t *testing.T) {
	pg, err := embedMigrations.ReadDir("postgres")
	require.NoError(t, err)
	assert.Len(t, pg, 2)

	lite, err := embedMigrations.ReadDir("sqlite")
	require.NoError(t, err)
	assert.Len(t, lite, 1)
}
