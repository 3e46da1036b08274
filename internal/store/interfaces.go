// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DirectoryProvider supplies the per-user base directory that install
// layouts are resolved against.
type DirectoryProvider interface {
	BaseDir() (string, error)
}

// PathResolver locates the identity artifacts of the target application.
type PathResolver interface {
	// Resolve returns the first existing candidate for kind, or the
	// canonical candidate when none exists.
	Resolve(kind models.ArtifactKind) (string, error)
	// Candidates returns every probed location for kind in probe order.
	Candidates(kind models.ArtifactKind) ([]string, error)
}

// BackupManager snapshots artifacts before they are overwritten or removed.
type BackupManager interface {
	// BackupIfExists copies path to a timestamped sibling. created is false
	// and backupPath is empty when path does not exist.
	BackupIfExists(ctx context.Context, path string) (backupPath string, created bool, err error)
}

// IDFileRepository reads and writes the plain-text id file.
type IDFileRepository interface {
	Read(ctx context.Context, path string) (string, error)
	Write(ctx context.Context, path, id string) error
	Remove(ctx context.Context, path string) error
}

// RecordRepository reads and writes the structured storage record.
type RecordRepository interface {
	Load(ctx context.Context, path string) (models.Record, error)
	Save(ctx context.Context, path string, record models.Record) error
}

// BackupJournal keeps a history of the backups taken.
type BackupJournal interface {
	RecordBackup(ctx context.Context, entry models.BackupEntry) (models.BackupEntry, error)
	ListBackups(ctx context.Context, limit uint64) ([]models.BackupEntry, error)
}
