// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the artifact stores. Every returned error wraps
// one of these together with the failing path, so callers should use
// [errors.Is] to match against them.
var (
	// ErrNoBaseDirectory is returned when the per-user configuration (or
	// local data) directory of the host OS cannot be determined. It is the
	// only error a path resolver can produce.
	ErrNoBaseDirectory = errors.New("per-user base directory cannot be determined")

	// ErrReadArtifact is returned when an existing artifact cannot be read.
	// A missing artifact additionally matches [io/fs.ErrNotExist].
	ErrReadArtifact = errors.New("failed to read artifact")

	// ErrWriteArtifact is returned when an artifact or its parent
	// directories cannot be written.
	ErrWriteArtifact = errors.New("failed to write artifact")

	// ErrRemoveArtifact is returned when the id file cannot be removed.
	ErrRemoveArtifact = errors.New("failed to remove artifact")

	// ErrBackupFailed is returned when a snapshot of an existing artifact
	// cannot be taken. The original artifact is left untouched.
	ErrBackupFailed = errors.New("failed to back up artifact")

	// ErrRecordMalformed is returned when the structured record exists but
	// is not a JSON object.
	ErrRecordMalformed = errors.New("storage record is malformed")
)

// Backup journal errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the journal fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT into the journal fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading journal rows fails.
	ErrScanningRows = errors.New("failed to scan backup journal rows")

	// ErrJournalDisabled is returned by the no-op journal when history is
	// requested.
	ErrJournalDisabled = errors.New("backup journal is disabled")
)
