// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps the host OS facilities the tool depends on but does
// not implement itself.
//
// The primary abstraction is [ProcessTerminator], which asks the OS
// process-termination utility (taskkill on Windows, pkill elsewhere) to stop
// the target application. Exit statuses are mapped to
// [models.TerminationOutcome] by mapCommandResult so the service layer never
// depends on a specific invocation mechanism.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ProcessTerminator terminates running processes by executable name.
type ProcessTerminator interface {
	// TerminateByName stops every process named name. A non-nil error is
	// returned only together with [models.TerminationError].
	TerminateByName(ctx context.Context, name string) (models.TerminationOutcome, error)
}
