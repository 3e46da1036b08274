// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/internal/config"
	"github.com/MKhiriev/go-id-keeper/internal/logger"
)

// Storages groups the artifact stores and the backup journal so they can be
// passed to the service layer as one value.
type Storages struct {
	Paths   PathResolver
	Backups BackupManager
	IDFiles IDFileRepository
	Records RecordRepository
	Journal BackupJournal

	db *DB
}

// NewStorages initialises the storage layer for the application named
// appName:
//  1. Picks the base directory: cfg.BaseDir when set, the host OS default
//     otherwise.
//  2. Opens and migrates the SQLite backup journal unless it is disabled.
//     A journal that cannot be opened is replaced by a no-op journal and
//     logged; it never prevents the tool from working.
func NewStorages(ctx context.Context, cfg config.ClientStorage, appName string, log *logger.Logger) *Storages {
	dirs := NewOSDirectoryProvider()
	if cfg.BaseDir != "" {
		dirs = NewStaticDirectoryProvider(cfg.BaseDir)
	}

	s := &Storages{
		Paths:   NewPathResolver(dirs, appName),
		Backups: NewBackupManager(log),
		IDFiles: NewIDFileRepository(log),
		Records: NewRecordRepository(log),
		Journal: NewNopBackupJournal(),
	}

	if cfg.Journal.Disabled {
		log.Debug().Str("func", "NewStorages").Msg("backup journal disabled")
		return s
	}

	db, err := NewConnectSQLite(ctx, cfg.Journal, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewStorages").Msg("backup journal unavailable")
		return s
	}

	if err = db.Migrate(); err != nil {
		log.Warn().Err(err).Str("func", "NewStorages").Msg("backup journal migration failed")
		_ = db.Close()
		return s
	}

	s.db = db
	s.Journal = NewBackupJournalRepository(db, log)

	return s
}

// Close releases the journal connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
