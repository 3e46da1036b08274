// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ArtifactUpdate describes what happened to a single artifact during an
// identity update.
type ArtifactUpdate struct {
	// Kind is the artifact that was updated.
	Kind ArtifactKind
	// Path is the resolved location of the artifact.
	Path string
	// BackupPath is the snapshot taken before the write. Empty when the
	// artifact did not exist.
	BackupPath string
	// Created is true when the artifact did not exist before the update.
	Created bool
	// DiscardedMalformed is true when a pre-existing structured record could
	// not be parsed and was replaced by a fresh one.
	DiscardedMalformed bool
}

// UpdateReport is the result of applying an [IdentitySet].
// A nil artifact entry means that artifact was not written.
type UpdateReport struct {
	Identity IdentitySet
	IDFile   *ArtifactUpdate
	Record   *ArtifactUpdate
}

// InspectionReport holds the identifiers currently on disk. Every value that
// could not be read is set to [NotFound].
type InspectionReport struct {
	Namespace string

	IDFilePath  string
	IDFileValue string

	RecordPath   string
	MacMachineID string
	MachineID    string
	DevDeviceID  string

	// Consistent is true when all values are present, machineId is the
	// SHA-256 of devDeviceId and the id file holds devDeviceId.
	Consistent bool
}

// DeleteReport is the result of the id file delete flow.
type DeleteReport struct {
	Path       string
	BackupPath string
	Cancelled  bool
}

// BackupEntry is a single row of the backup journal.
type BackupEntry struct {
	ID           int64
	Kind         ArtifactKind
	OriginalPath string
	BackupPath   string
	CreatedAt    time.Time
}
