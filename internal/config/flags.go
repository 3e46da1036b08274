package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags and the positional command.
//
// Usage:
//
//	idkeeper [flags] <command> [args...]
//
// Flags:
//
//	-c/-config config file path (JSON, or YAML for .yaml/.yml)
//	-base-dir per-user config directory override
//	-target target application directory name
//	-process target application process name
//	-namespace telemetry namespace of the managed record keys
//	-journal backup journal SQLite file
//	-no-journal disable the backup journal
//	-kill-timeout process termination timeout (e.g. "10s")
//	-log-file diagnostic log file
//	-log-level diagnostic log level
//	-copy copy the relevant identifier to the clipboard
//	-limit number of backup journal entries to list
//	-all list every backup journal entry
func ParseFlags() *StructuredConfig {
	var configPath string
	var baseDir string
	var targetName string
	var processName string
	var namespace string
	var journalDSN string
	var noJournal bool
	var killTimeout time.Duration
	var logFile string
	var logLevel string
	var copyToClipboard bool
	var backupsLimit uint64
	var allBackups bool

	flag.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	flag.StringVar(&configPath, "config", "", "Config file path (alias)")
	flag.StringVar(&baseDir, "base-dir", "", "Per-user config directory override")
	flag.StringVar(&targetName, "target", "", "Target application directory name")
	flag.StringVar(&processName, "process", "", "Target application process name")
	flag.StringVar(&namespace, "namespace", "", "Telemetry namespace of the managed keys")
	flag.StringVar(&journalDSN, "journal", "", "Backup journal SQLite file")
	flag.BoolVar(&noJournal, "no-journal", false, "Disable the backup journal")
	flag.DurationVar(&killTimeout, "kill-timeout", 0, "Process termination timeout (e.g., 10s)")
	flag.StringVar(&logFile, "log-file", "", "Diagnostic log file")
	flag.StringVar(&logLevel, "log-level", "", "Diagnostic log level")
	flag.BoolVar(&copyToClipboard, "copy", false, "Copy the identifier to the clipboard")
	flag.Uint64Var(&backupsLimit, "limit", 0, "Number of backup journal entries to list")
	flag.BoolVar(&allBackups, "all", false, "List every backup journal entry")

	flag.Parse()

	var command string
	var args []string
	if flag.NArg() > 0 {
		command = flag.Arg(0)
		args = flag.Args()[1:]
	}

	return &StructuredConfig{
		App: App{
			TargetName:         targetName,
			ProcessName:        processName,
			TelemetryNamespace: namespace,
		},
		Storage: Storage{
			BaseDir: baseDir,
			Journal: Journal{
				DSN:      journalDSN,
				Disabled: noJournal,
			},
		},
		Process: Process{
			TerminateTimeout: killTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Output: Output{
			Copy:         copyToClipboard,
			BackupsLimit: backupsLimit,
			AllBackups:   allBackups,
		},
		FilePath: configPath,
		Command:  command,
		Args:     args,
	}
}
