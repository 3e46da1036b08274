// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-id-keeper/models"
)

const backupsTable = "backups"

// SQLite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var backupColumns = []string{
	"id",
	"artifact_kind",
	"original_path",
	"backup_path",
	"created_at",
}

func buildInsertBackupQuery(entry models.BackupEntry) (string, []any, error) {
	return sqlite.
		Insert(backupsTable).
		Columns("artifact_kind", "original_path", "backup_path", "created_at").
		Values(entry.Kind.String(), entry.OriginalPath, entry.BackupPath, entry.CreatedAt.UTC()).
		ToSql()
}

// buildSelectBackupsQuery lists the newest entries first. A zero limit
// selects every entry.
func buildSelectBackupsQuery(limit uint64) (string, []any, error) {
	query := sqlite.
		Select(backupColumns...).
		From(backupsTable).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}
