// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
)

// validate checks that the final merged [StructuredConfig] is usable.
// Every field that matters has a default, so only malformed overrides fail.
func (cfg *StructuredConfig) validate() error {
	if cfg.Process.TerminateTimeout < 0 {
		return fmt.Errorf("%w: negative terminate timeout", ErrInvalidProcessConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.TargetName == "" || cfg.App.ProcessName == "" || cfg.App.TelemetryNamespace == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Process.TerminateTimeout <= 0 {
		return ErrInvalidProcessConfigs
	}

	if cfg.Storage.BaseDir != "" && !filepath.IsAbs(cfg.Storage.BaseDir) {
		return fmt.Errorf("%w: base dir must be absolute", ErrInvalidStorageConfigs)
	}

	return nil
}
