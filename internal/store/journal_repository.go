// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/models"
)

type backupJournalRepository struct {
	*DB
	logger *logger.Logger
}

// NewBackupJournalRepository returns the SQLite-backed [BackupJournal].
func NewBackupJournalRepository(db *DB, logger *logger.Logger) BackupJournal {
	return &backupJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *backupJournalRepository) RecordBackup(ctx context.Context, entry models.BackupEntry) (models.BackupEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBackupQuery(entry)
	if err != nil {
		return models.BackupEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "backupJournalRepository.RecordBackup").
			Str("backup_path", entry.BackupPath).
			Msg("failed to insert backup journal entry")
		return models.BackupEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.BackupEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	entry.ID = id

	return entry, nil
}

func (r *backupJournalRepository) ListBackups(ctx context.Context, limit uint64) ([]models.BackupEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBackupsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "backupJournalRepository.ListBackups").
			Msg("failed to execute query for listing backups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.BackupEntry

	for rows.Next() {
		var (
			entry models.BackupEntry
			kind  string
		)

		if err = rows.Scan(&entry.ID, &kind, &entry.OriginalPath, &entry.BackupPath, &entry.CreatedAt); err != nil {
			log.Err(err).
				Str("func", "backupJournalRepository.ListBackups").
				Msg("failed to scan backup journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if entry.Kind, err = models.ParseArtifactKind(kind); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.CreatedAt = entry.CreatedAt.Local()

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "backupJournalRepository.ListBackups").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

type nopBackupJournal struct{}

// NewNopBackupJournal returns a journal that records nothing.
func NewNopBackupJournal() BackupJournal {
	return nopBackupJournal{}
}

func (nopBackupJournal) RecordBackup(_ context.Context, entry models.BackupEntry) (models.BackupEntry, error) {
	return entry, nil
}

func (nopBackupJournal) ListBackups(context.Context, uint64) ([]models.BackupEntry, error) {
	return nil, ErrJournalDisabled
}
