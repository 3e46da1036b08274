// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// IdentityGenerator produces new, internally consistent identity sets.
type IdentityGenerator interface {
	// Generate draws a fresh UUID v4 primary id, a hashed random MAC and the
	// hash of the primary id. It cannot fail.
	Generate() models.IdentitySet
}

// RecordUpdater applies an identity set to both identity artifacts.
type RecordUpdater interface {
	// Apply writes the id file first, then merges the managed keys into the
	// storage record. Every existing artifact is backed up before it is
	// touched. When the record update fails the returned report still
	// describes the id file update; the id file is not rolled back.
	Apply(ctx context.Context, ids models.IdentitySet) (models.UpdateReport, error)
}

// IdentityInspector reads the identifiers currently on disk.
type IdentityInspector interface {
	// Inspect never fails: anything that cannot be read is reported as
	// [models.NotFound].
	Inspect(ctx context.Context) models.InspectionReport
}

// DeleteService removes the id file after confirmation and a backup.
type DeleteService interface {
	Delete(ctx context.Context) (models.DeleteReport, error)
}

// ProcessService terminates the running target application.
type ProcessService interface {
	Terminate(ctx context.Context) (models.TerminationOutcome, error)
}

// BackupHistoryService lists the backups recorded in the journal.
type BackupHistoryService interface {
	// List returns at most limit entries, newest first. A zero limit
	// returns every entry.
	List(ctx context.Context, limit uint64) ([]models.BackupEntry, error)
}

// AppInfoService exposes the build metadata of the binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
