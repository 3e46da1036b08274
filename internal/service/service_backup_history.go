// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/validators"
	"github.com/MKhiriev/go-id-keeper/models"
)

type backupHistoryService struct {
	journal store.BackupJournal

	logger *logger.Logger
}

func NewBackupHistoryService(journal store.BackupJournal, logger *logger.Logger) BackupHistoryService {
	return &backupHistoryService{
		journal: journal,
		logger:  logger,
	}
}

func (s *backupHistoryService) List(ctx context.Context, limit uint64) ([]models.BackupEntry, error) {
	entries, err := s.journal.ListBackups(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing backups: %w", err)
	}

	return entries, nil
}

// backupTaker backs an artifact up and records the backup in the journal.
// Journal failures are logged and never returned.
type backupTaker struct {
	backups   store.BackupManager
	journal   store.BackupJournal
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

func newBackupTaker(backups store.BackupManager, journal store.BackupJournal, validator validators.Validator, logger *logger.Logger) *backupTaker {
	return &backupTaker{
		backups:   backups,
		journal:   journal,
		validator: validator,
		now:       time.Now,
		logger:    logger,
	}
}

func (b *backupTaker) take(ctx context.Context, kind models.ArtifactKind, path string) (string, bool, error) {
	backupPath, created, err := b.backups.BackupIfExists(ctx, path)
	if err != nil || !created {
		return backupPath, created, err
	}

	entry := models.BackupEntry{
		Kind:         kind,
		OriginalPath: path,
		BackupPath:   backupPath,
		CreatedAt:    b.now(),
	}

	if err = b.validator.Validate(ctx, entry); err != nil {
		b.logger.Warn().Err(err).
			Str("func", "backupTaker.take").
			Str("backup_path", backupPath).
			Msg("backup journal entry rejected")
		return backupPath, true, nil
	}

	if _, err = b.journal.RecordBackup(ctx, entry); err != nil {
		b.logger.Warn().Err(err).
			Str("func", "backupTaker.take").
			Str("backup_path", backupPath).
			Msg("failed to record backup in journal")
	}

	return backupPath, true, nil
}
