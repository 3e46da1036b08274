package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an empty target name, process name or
	// telemetry namespace.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidProcessConfigs indicates a non-positive termination timeout.
	ErrInvalidProcessConfigs = errors.New("invalid process configuration")
	// ErrInvalidStorageConfigs indicates an unusable storage location
	// (for example, a relative base directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
