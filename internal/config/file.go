// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk shape of the config file. The same
// structure is read from JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		TargetName         string `json:"target_name" yaml:"target_name"`
		ProcessName        string `json:"process_name" yaml:"process_name"`
		TelemetryNamespace string `json:"telemetry_namespace" yaml:"telemetry_namespace"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		BaseDir string `json:"base_dir" yaml:"base_dir"`

		Journal struct {
			DSN      string `json:"dsn" yaml:"dsn"`
			Disabled bool   `json:"disabled" yaml:"disabled"`
		} `json:"journal,omitempty" yaml:"journal,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Process struct {
		TerminateTimeout Duration `json:"terminate_timeout" yaml:"terminate_timeout"`
	} `json:"process,omitempty" yaml:"process,omitempty"`

	Log struct {
		File  string `json:"file" yaml:"file"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseFile(filePath string) (*StructuredConfig, error) {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer file.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(file).Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.NewDecoder(file).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		App: App{
			TargetName:         fileCfg.App.TargetName,
			ProcessName:        fileCfg.App.ProcessName,
			TelemetryNamespace: fileCfg.App.TelemetryNamespace,
		},
		Storage: Storage{
			BaseDir: fileCfg.Storage.BaseDir,
			Journal: Journal{
				DSN:      fileCfg.Storage.Journal.DSN,
				Disabled: fileCfg.Storage.Journal.Disabled,
			},
		},
		Process: Process{
			TerminateTimeout: time.Duration(fileCfg.Process.TerminateTimeout),
		},
		Log: Log{
			File:  fileCfg.Log.File,
			Level: fileCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
