// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from flags,
// environment variables, an optional config file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App describes the target application whose identity is managed.
	App App `envPrefix:"APP_"`

	// Storage holds filesystem locations used by the tool.
	Storage Storage `envPrefix:"STORAGE_"`

	// Process holds settings for terminating the target application.
	Process Process `envPrefix:"PROCESS_"`

	// Log holds settings of the diagnostic log.
	Log Log `envPrefix:"LOG_"`

	// Output holds presentation switches. Populated from flags only.
	Output Output

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// Command is the positional command name (ids, random-ids, delete, ...).
	Command string

	// Args holds positional arguments following Command.
	Args []string
}

// App holds the identity of the target application.
type App struct {
	// TargetName is the application directory name on disk (e.g. "Cursor").
	// Env: APP_TARGET_NAME
	TargetName string `env:"TARGET_NAME"`

	// ProcessName is the executable name used when terminating the
	// application (e.g. "cursor").
	// Env: APP_PROCESS_NAME
	ProcessName string `env:"PROCESS_NAME"`

	// TelemetryNamespace prefixes the managed keys of the storage record
	// (e.g. "telemetry" for "telemetry.machineId").
	// Env: APP_TELEMETRY_NAMESPACE
	TelemetryNamespace string `env:"TELEMETRY_NAMESPACE"`
}

// Storage holds filesystem locations.
type Storage struct {
	// BaseDir overrides the per-user configuration directory that install
	// layouts are resolved against. Empty means the OS default.
	// Env: STORAGE_BASE_DIR
	BaseDir string `env:"BASE_DIR"`

	// Journal holds the backup journal settings.
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal holds the SQLite backup journal settings.
type Journal struct {
	// DSN is the SQLite database file.
	// Env: STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`

	// Disabled turns the journal off.
	// Env: STORAGE_JOURNAL_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Process holds process termination settings.
type Process struct {
	// TerminateTimeout bounds a single run of the OS termination utility
	// (e.g. "10s").
	// Env: PROCESS_TERMINATE_TIMEOUT
	TerminateTimeout time.Duration `env:"TERMINATE_TIMEOUT"`
}

// Log holds settings of the diagnostic log.
type Log struct {
	// File is the log file path. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds presentation switches.
type Output struct {
	// Copy puts the relevant identifier into the system clipboard.
	Copy bool

	// BackupsLimit caps the number of journal entries listed.
	BackupsLimit uint64

	// AllBackups lists every journal entry, ignoring BackupsLimit.
	AllBackups bool
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. See the package documentation for the precedence rules.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withFile().
		withDefaults().
		build()
}
