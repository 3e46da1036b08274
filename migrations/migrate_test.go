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

func openTestSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	if err = db.Ping(); err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}
	return db
}

func TestMigrate_CreatesBackupsTable(t *testing.T) {
	db := openTestSQLite(t)

	require.NoError(t, Migrate(db))

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'backups'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "backups", name)

	var index string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'index' AND name = 'idx_backups_created_at'`).Scan(&index)
	require.NoError(t, err)
	assert.Equal(t, "idx_backups_created_at", index)

	res, err := db.Exec(
		`INSERT INTO backups (artifact_kind, original_path, backup_path, created_at) VALUES (?, ?, ?, ?)`,
		"id-file", "/c/machineid", "/c/machineid_backup_20261016_080000", "2026-10-16 08:00:00",
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestSQLite(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'backups'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: every statement goose sends is rejected

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}
