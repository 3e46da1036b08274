// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultTargetName         = "Cursor"
	DefaultProcessName        = "cursor"
	DefaultTelemetryNamespace = "telemetry"
	DefaultTerminateTimeout   = 10 * time.Second
	DefaultLogLevel           = "info"
	DefaultBackupsLimit       = 20

	journalDirName  = "idkeeper"
	journalFileName = "journal.db"
)

// defaultConfig returns the lowest-precedence configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TargetName:         DefaultTargetName,
			ProcessName:        DefaultProcessName,
			TelemetryNamespace: DefaultTelemetryNamespace,
		},
		Storage: Storage{
			Journal: Journal{
				DSN: defaultJournalDSN(),
			},
		},
		Process: Process{
			TerminateTimeout: DefaultTerminateTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Output: Output{
			BackupsLimit: DefaultBackupsLimit,
		},
	}
}

// defaultJournalDSN places the journal in the user's config directory.
// It returns "" when that directory is unknown, which disables the journal.
func defaultJournalDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, journalDirName, journalFileName)
}
