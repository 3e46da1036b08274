package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-c", "/path/to/config.json",
				"-base-dir", "/home/user/.config",
				"-target", "Cursor",
				"-process", "cursor",
				"-namespace", "telemetry",
				"-journal", "/tmp/journal.db",
				"-no-journal",
				"-kill-timeout", "3s",
				"-log-file", "/tmp/idkeeper.log",
				"-log-level", "debug",
				"-copy",
				"-limit", "5",
				"-all",
				"random-ids",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.FilePath)
				assert.Equal(t, "/home/user/.config", cfg.Storage.BaseDir)
				assert.Equal(t, "Cursor", cfg.App.TargetName)
				assert.Equal(t, "cursor", cfg.App.ProcessName)
				assert.Equal(t, "telemetry", cfg.App.TelemetryNamespace)
				assert.Equal(t, "/tmp/journal.db", cfg.Storage.Journal.DSN)
				assert.True(t, cfg.Storage.Journal.Disabled)
				assert.Equal(t, 3*time.Second, cfg.Process.TerminateTimeout)
				assert.Equal(t, "/tmp/idkeeper.log", cfg.Log.File)
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.True(t, cfg.Output.Copy)
				assert.Equal(t, uint64(5), cfg.Output.BackupsLimit)
				assert.True(t, cfg.Output.AllBackups)
				assert.Equal(t, "random-ids", cfg.Command)
				assert.Empty(t, cfg.Args)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.yaml",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)
				assert.Empty(t, cfg.Command)
			},
		},
		{
			name: "command with trailing args",
			args: []string{"backups", "extra", "more"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "backups", cfg.Command)
				assert.Equal(t, []string{"extra", "more"}, cfg.Args)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.FilePath)
				assert.Empty(t, cfg.App.TargetName)
				assert.False(t, cfg.Storage.Journal.Disabled)
				assert.Zero(t, cfg.Process.TerminateTimeout)
				assert.False(t, cfg.Output.Copy)
				assert.Empty(t, cfg.Command)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t, tt.args...)

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
