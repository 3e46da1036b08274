package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"target_name": "Cursor",
			"process_name": "cursor",
			"telemetry_namespace": "telemetry"
		},
		"storage": {
			"base_dir": "/home/user/.config",
			"journal": { "dsn": "/tmp/journal.db", "disabled": true }
		},
		"process": { "terminate_timeout": "15s" },
		"log": { "file": "/tmp/idkeeper.log", "level": "warn" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Cursor", cfg.App.TargetName)
	assert.Equal(t, "cursor", cfg.App.ProcessName)
	assert.Equal(t, "telemetry", cfg.App.TelemetryNamespace)
	assert.Equal(t, "/home/user/.config", cfg.Storage.BaseDir)
	assert.Equal(t, "/tmp/journal.db", cfg.Storage.Journal.DSN)
	assert.True(t, cfg.Storage.Journal.Disabled)
	assert.Equal(t, 15*time.Second, cfg.Process.TerminateTimeout)
	assert.Equal(t, "/tmp/idkeeper.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseFile_YAML(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")

	yamlBody := `
app:
  target_name: Cursor
  process_name: cursor
storage:
  journal:
    dsn: /tmp/journal.db
process:
  terminate_timeout: 2m
log:
  level: debug
`
	require.NoError(t, os.WriteFile(p, []byte(yamlBody), 0o600))

	// Act
	cfg, err := parseFile(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Cursor", cfg.App.TargetName)
	assert.Equal(t, "cursor", cfg.App.ProcessName)
	assert.Empty(t, cfg.App.TelemetryNamespace)
	assert.Equal(t, "/tmp/journal.db", cfg.Storage.Journal.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Process.TerminateTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFile_YAMLIntegerDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte("process:\n  terminate_timeout: 1000000000\n"), 0o600))

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Process.TerminateTimeout)
}

func TestParseFile_EmptyYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(p, nil, 0o600))

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFile_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseFile("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a config file")
}

func TestParseFile_InvalidContent(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{name: "invalid json", file: "bad.json", body: `{ this is not json }`, wantErr: "error decoding json configs"},
		{name: "invalid json duration", file: "bad_duration.json", body: `{"process": {"terminate_timeout": "not-a-duration"}}`, wantErr: "error decoding json configs"},
		{name: "invalid yaml", file: "bad.yaml", body: "app: [unclosed", wantErr: "error decoding yaml configs"},
		{name: "invalid yaml duration", file: "bad_duration.yaml", body: "process:\n  terminate_timeout: soon\n", wantErr: "error decoding yaml configs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o600))

			cfg, err := parseFile(p)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
