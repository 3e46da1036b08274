package config

import (
	"fmt"
	"time"
)

// ClientApp holds the target application identity.
type ClientApp struct {
	// TargetName is the application directory name (e.g. "Cursor").
	TargetName string
	// ProcessName is the executable name used for termination.
	ProcessName string
	// TelemetryNamespace prefixes the managed record keys.
	TelemetryNamespace string
}

// ClientJournal holds the backup journal settings.
type ClientJournal struct {
	// DSN is the SQLite database file.
	DSN string
	// Disabled is true when no journal should be kept.
	Disabled bool
}

// ClientStorage groups filesystem settings.
type ClientStorage struct {
	// BaseDir overrides the OS per-user config directory when non-empty.
	BaseDir string
	// Journal holds the backup journal settings.
	Journal ClientJournal
}

// ClientProcess holds process termination settings.
type ClientProcess struct {
	// TerminateTimeout bounds one run of the termination utility.
	TerminateTimeout time.Duration
}

// ClientLog holds the diagnostic log settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientOutput holds presentation switches.
type ClientOutput struct {
	Copy         bool
	BackupsLimit uint64
	// AllBackups overrides BackupsLimit and lists every entry.
	AllBackups bool
}

// ClientConfig is the top-level configuration of the idkeeper CLI assembled
// from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Process ClientProcess
	Log     ClientLog
	Output  ClientOutput

	// Command is the requested command; empty means "help".
	Command string
	// Args are the positional arguments after Command.
	Args []string
}

// GetClientConfig builds and validates the CLI config view from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TargetName:         cfg.App.TargetName,
			ProcessName:        cfg.App.ProcessName,
			TelemetryNamespace: cfg.App.TelemetryNamespace,
		},
		Storage: ClientStorage{
			BaseDir: cfg.Storage.BaseDir,
			Journal: ClientJournal{
				DSN:      cfg.Storage.Journal.DSN,
				Disabled: cfg.Storage.Journal.Disabled || cfg.Storage.Journal.DSN == "",
			},
		},
		Process: ClientProcess{
			TerminateTimeout: cfg.Process.TerminateTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Output: ClientOutput{
			Copy:         cfg.Output.Copy,
			BackupsLimit: cfg.Output.BackupsLimit,
			AllBackups:   cfg.Output.AllBackups,
		},
		Command: cfg.Command,
		Args:    cfg.Args,
	}
}
