// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/models"
)

const goosWindows = "windows"

type osProcessTerminator struct {
	goos    string
	timeout time.Duration
	run     commandRunner
	logger  *logger.Logger
}

// NewProcessTerminator returns a [ProcessTerminator] backed by the OS
// utility of the current platform. Each invocation is bounded by timeout;
// a zero timeout relies on ctx alone.
func NewProcessTerminator(timeout time.Duration, logger *logger.Logger) ProcessTerminator {
	return &osProcessTerminator{
		goos:    runtime.GOOS,
		timeout: timeout,
		run:     runCommand,
		logger:  logger,
	}
}

func (t *osProcessTerminator) TerminateByName(ctx context.Context, name string) (models.TerminationOutcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.TerminationError, ErrEmptyProcessName
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	command, args := terminateCommand(t.goos, name)
	result, err := t.run(ctx, command, args...)
	outcome, err := mapCommandResult(result, err)

	event := t.logger.Debug()
	if err != nil {
		event = t.logger.Err(err)
	}
	event.
		Str("func", "osProcessTerminator.TerminateByName").
		Str("command", command).
		Strs("args", args).
		Int("exit_code", result.ExitCode).
		Str("stderr", strings.TrimSpace(string(result.Stderr))).
		Stringer("outcome", outcome).
		Msg("termination utility finished")

	return outcome, err
}

// terminateCommand returns the force-kill invocation for goos.
func terminateCommand(goos, name string) (string, []string) {
	if goos == goosWindows {
		image := name
		if !strings.HasSuffix(strings.ToLower(image), ".exe") {
			image += ".exe"
		}
		return "taskkill", []string{"/F", "/IM", image}
	}

	return "pkill", []string{name}
}
