// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/validators"
	"github.com/MKhiriev/go-id-keeper/models"
)

type deleteService struct {
	paths     store.PathResolver
	idFiles   store.IDFileRepository
	backups   *backupTaker
	confirmer Confirmer

	logger *logger.Logger
}

func NewDeleteService(storages *store.Storages, confirmer Confirmer, validator validators.Validator, logger *logger.Logger) DeleteService {
	return &deleteService{
		paths:     storages.Paths,
		idFiles:   storages.IDFiles,
		backups:   newBackupTaker(storages.Backups, storages.Journal, validator, logger),
		confirmer: confirmer,
		logger:    logger,
	}
}

// Delete asks for confirmation, backs the id file up and removes it. The
// backup is kept when removal fails.
func (s *deleteService) Delete(ctx context.Context) (models.DeleteReport, error) {
	path, err := s.paths.Resolve(models.ArtifactIDFile)
	if err != nil {
		return models.DeleteReport{}, err
	}
	report := models.DeleteReport{Path: path}

	ok, err := s.confirmer.Confirm(ctx, fmt.Sprintf("Delete %s?", path))
	if err != nil {
		return report, fmt.Errorf("%w: %w", ErrConfirmation, err)
	}
	if !ok {
		report.Cancelled = true
		s.logger.Info().Str("func", "deleteService.Delete").Str("path", path).Msg("delete cancelled")
		return report, nil
	}

	backupPath, _, err := s.backups.take(ctx, models.ArtifactIDFile, path)
	if err != nil {
		return report, err
	}
	report.BackupPath = backupPath

	if err = s.idFiles.Remove(ctx, path); err != nil {
		s.logger.Err(err).
			Str("func", "deleteService.Delete").
			Str("backup_path", backupPath).
			Msg("id file removal failed")
		return report, err
	}

	s.logger.Info().
		Str("func", "deleteService.Delete").
		Str("path", path).
		Str("backup_path", backupPath).
		Msg("id file deleted")

	return report, nil
}
