// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/validators"
	"github.com/MKhiriev/go-id-keeper/models"
)

type recordUpdater struct {
	paths     store.PathResolver
	idFiles   store.IDFileRepository
	records   store.RecordRepository
	backups   *backupTaker
	validator validators.Validator
	namespace string

	logger *logger.Logger
}

// NewRecordUpdater writes identity sets to the artifacts of storages. Managed
// record keys are prefixed with namespace.
func NewRecordUpdater(storages *store.Storages, namespace string, validator validators.Validator, logger *logger.Logger) RecordUpdater {
	return &recordUpdater{
		paths:     storages.Paths,
		idFiles:   storages.IDFiles,
		records:   storages.Records,
		backups:   newBackupTaker(storages.Backups, storages.Journal, validator, logger),
		validator: validator,
		namespace: namespace,
		logger:    logger,
	}
}

func (u *recordUpdater) Apply(ctx context.Context, ids models.IdentitySet) (models.UpdateReport, error) {
	report := models.UpdateReport{Identity: ids}

	if err := u.validator.Validate(ctx, ids); err != nil {
		return report, fmt.Errorf("%w: %w", ErrInvalidIdentity, err)
	}

	idFile, err := u.applyIDFile(ctx, ids)
	if err != nil {
		u.logger.Err(err).Str("func", "recordUpdater.Apply").Msg("id file update failed")
		return report, err
	}
	report.IDFile = &idFile

	record, err := u.applyRecord(ctx, ids)
	if err != nil {
		u.logger.Err(err).Str("func", "recordUpdater.Apply").Msg("storage record update failed")
		return report, err
	}
	report.Record = &record

	u.logger.Info().
		Str("func", "recordUpdater.Apply").
		Str("id_file", idFile.Path).
		Str("record", record.Path).
		Msg("identity applied")

	return report, nil
}

func (u *recordUpdater) applyIDFile(ctx context.Context, ids models.IdentitySet) (models.ArtifactUpdate, error) {
	update := models.ArtifactUpdate{Kind: models.ArtifactIDFile}

	path, err := u.paths.Resolve(models.ArtifactIDFile)
	if err != nil {
		return update, err
	}
	update.Path = path

	backupPath, existed, err := u.backups.take(ctx, models.ArtifactIDFile, path)
	if err != nil {
		return update, err
	}
	update.BackupPath = backupPath
	update.Created = !existed

	if err = u.idFiles.Write(ctx, path, ids.PrimaryID); err != nil {
		return update, err
	}

	return update, nil
}

func (u *recordUpdater) applyRecord(ctx context.Context, ids models.IdentitySet) (models.ArtifactUpdate, error) {
	update := models.ArtifactUpdate{Kind: models.ArtifactStorageRecord}

	path, err := u.paths.Resolve(models.ArtifactStorageRecord)
	if err != nil {
		return update, err
	}
	update.Path = path

	backupPath, existed, err := u.backups.take(ctx, models.ArtifactStorageRecord, path)
	if err != nil {
		return update, err
	}
	update.BackupPath = backupPath
	update.Created = !existed

	record := models.NewRecord()
	if existed {
		existing, loadErr := u.records.Load(ctx, path)
		switch {
		case loadErr == nil:
			record = existing
		case errors.Is(loadErr, store.ErrRecordMalformed):
			// the malformed content survives in the backup
			update.DiscardedMalformed = true
			u.logger.Warn().Err(loadErr).
				Str("func", "recordUpdater.applyRecord").
				Str("path", path).
				Str("backup_path", backupPath).
				Msg("malformed storage record replaced")
		default:
			return update, loadErr
		}
	}

	for key, value := range ids.RecordFields(u.namespace) {
		record.SetString(key, value)
	}

	if err = u.records.Save(ctx, path, record); err != nil {
		return update, err
	}

	return update, nil
}
