// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ArtifactKind identifies one of the two files holding the identity state
// of the target application.
type ArtifactKind int

const (
	// ArtifactIDFile is the plain-text file whose entire content is the
	// primary identifier (e.g. ~/.config/Cursor/machineid).
	ArtifactIDFile ArtifactKind = 1

	// ArtifactStorageRecord is the structured JSON record holding the
	// telemetry identifiers among unrelated application settings
	// (e.g. ~/.config/Cursor/User/globalStorage/storage.json).
	ArtifactStorageRecord ArtifactKind = 2
)

const (
	artifactIDFileName        = "id-file"
	artifactStorageRecordName = "storage-record"
)

// String returns the stable textual name of the kind. The value is persisted
// in the backup journal, so it must not change.
func (k ArtifactKind) String() string {
	switch k {
	case ArtifactIDFile:
		return artifactIDFileName
	case ArtifactStorageRecord:
		return artifactStorageRecordName
	default:
		return fmt.Sprintf("artifact(%d)", int(k))
	}
}

// ParseArtifactKind is the inverse of [ArtifactKind.String].
func ParseArtifactKind(s string) (ArtifactKind, error) {
	switch strings.TrimSpace(s) {
	case artifactIDFileName:
		return ArtifactIDFile, nil
	case artifactStorageRecordName:
		return ArtifactStorageRecord, nil
	default:
		return 0, fmt.Errorf("unknown artifact kind %q", s)
	}
}
