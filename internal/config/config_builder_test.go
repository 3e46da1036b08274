package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// resetFlags installs a fresh flag.CommandLine and simulates the given
// command line for the duration of the test.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	oldArgs := os.Args
	os.Args = append([]string{"idkeeper"}, args...)
	t.Cleanup(func() { os.Args = oldArgs })
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierLayerWins verifies the merge precedence: a non-zero value
// in an earlier layer is never overwritten by a later one.
func TestBuild_EarlierLayerWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TargetName: "flag-target"}},
		&StructuredConfig{App: App{TargetName: "env-target", ProcessName: "env-process"}},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag-target", cfg.App.TargetName)
	assert.Equal(t, "env-process", cfg.App.ProcessName)
	assert.Equal(t, DefaultTelemetryNamespace, cfg.App.TelemetryNamespace)
	assert.Equal(t, DefaultTerminateTimeout, cfg.Process.TerminateTimeout)
}

// TestBuild_RejectsNegativeTimeout verifies structured validation.
func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Process: Process{TerminateTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidProcessConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TARGET_NAME":  "Windsurf",
		"APP_PROCESS_NAME": "windsurf",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "Windsurf", b.configs[0].App.TargetName)
	assert.Equal(t, "windsurf", b.configs[0].App.ProcessName)
}

// TestWithEnv_SetsErrorOnBadValue verifies that conversion errors are kept.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"PROCESS_TERMINATE_TIMEOUT": "soon"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	resetFlags(t, "ids")

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
	require.Len(t, b.configs, 1)
	assert.Equal(t, "ids", b.configs[0].Command)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.TargetName = "json-target"
	payload.Log.Level = "debug"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-target", b.configs[1].App.TargetName)
	assert.Equal(t, "debug", b.configs[1].Log.Level)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		FilePath: "/nonexistent/config.json",
	})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesFirstPath verifies that the highest-precedence layer
// decides which file is read.
func TestWithFile_UsesFirstPath(t *testing.T) {
	first := StructuredFileConfig{}
	first.App.TargetName = "first-wins"
	second := StructuredFileConfig{}
	second.App.TargetName = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: ""},
		&StructuredConfig{FilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{FilePath: writeTempJSONConfig(t, second)},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first-wins", b.configs[3].App.TargetName)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t, "ids")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultTargetName, cfg.App.TargetName)
	assert.Equal(t, DefaultProcessName, cfg.App.ProcessName)
	assert.Equal(t, DefaultTelemetryNamespace, cfg.App.TelemetryNamespace)
	assert.Equal(t, DefaultTerminateTimeout, cfg.Process.TerminateTimeout)
	assert.Equal(t, uint64(DefaultBackupsLimit), cfg.Output.BackupsLimit)
	assert.Equal(t, "ids", cfg.Command)
}

func TestGetClientConfig_AllBackups(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t, "-limit", "0", "-all", "backups")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	// a zero limit is indistinguishable from "unset" and gets the default
	assert.Equal(t, uint64(DefaultBackupsLimit), cfg.Output.BackupsLimit)
	assert.True(t, cfg.Output.AllBackups)
	assert.Equal(t, "backups", cfg.Command)
}

func TestGetClientConfig_FlagsOverrideEnvAndFile(t *testing.T) {
	fileCfg := StructuredFileConfig{}
	fileCfg.App.TargetName = "FromFile"
	fileCfg.App.ProcessName = "from-file"
	fileCfg.App.TelemetryNamespace = "file-ns"
	path := writeTempJSONConfig(t, fileCfg)

	setEnvVars(t, map[string]string{"APP_PROCESS_NAME": "from-env"})
	resetFlags(t, "-c", path, "-target", "FromFlag", "-no-journal", "kill")

	cfg, err := GetClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "FromFlag", cfg.App.TargetName)
	assert.Equal(t, "from-env", cfg.App.ProcessName)
	assert.Equal(t, "file-ns", cfg.App.TelemetryNamespace)
	assert.True(t, cfg.Storage.Journal.Disabled)
	assert.Equal(t, "kill", cfg.Command)
}

func TestGetClientConfig_RelativeBaseDir(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t, "-base-dir", "relative/dir", "ids")

	_, err := GetClientConfig()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestNewClientConfig_EmptyJournalDSNDisablesJournal(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})
	assert.True(t, cfg.Storage.Journal.Disabled)

	cfg = newClientConfig(&StructuredConfig{Storage: Storage{Journal: Journal{DSN: "/tmp/j.db"}}})
	assert.False(t, cfg.Storage.Journal.Disabled)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{TargetName: "Cursor", ProcessName: "cursor", TelemetryNamespace: "telemetry"},
			Process: ClientProcess{TerminateTimeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *ClientConfig) {}},
		{name: "empty target", mutate: func(cfg *ClientConfig) { cfg.App.TargetName = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty process", mutate: func(cfg *ClientConfig) { cfg.App.ProcessName = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty namespace", mutate: func(cfg *ClientConfig) { cfg.App.TelemetryNamespace = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero timeout", mutate: func(cfg *ClientConfig) { cfg.Process.TerminateTimeout = 0 }, wantErr: ErrInvalidProcessConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
