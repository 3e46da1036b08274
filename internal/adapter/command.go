// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// waitDelay bounds how long output pipes are drained after the process is
// killed, in case it left children holding them open.
const waitDelay = 2 * time.Second

// commandResult is the outcome of a command that ran to completion.
type commandResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// commandRunner runs name with args. A non-zero exit code is not an error;
// only failures to run the command are.
type commandRunner func(ctx context.Context, name string, args ...string) (commandResult, error)

func runCommand(ctx context.Context, name string, args ...string) (commandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := commandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	// context errors first: a killed process also reports an ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return result, fmt.Errorf("%w: %s", ErrCommandTimedOut, name)
	case errors.Is(ctx.Err(), context.Canceled):
		return result, fmt.Errorf("%w: %s", ErrCommandCancelled, name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}

	return result, fmt.Errorf("%w: %s: %w", ErrCommandFailed, name, err)
}
