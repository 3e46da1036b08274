// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders command results to the console and asks the operator
// for confirmation.
//
// Reports are styled with lipgloss bound to the output writer, so colors are
// dropped automatically when the output is not a terminal. The confirmation
// prompt is a small bubbletea program reading from the configured input.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
)

type TUI struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	styles styles

	logger *logger.Logger
}

// New returns a TUI reading answers from in, writing reports to out and
// errors to errOut.
func New(in io.Reader, out, errOut io.Writer, logger *logger.Logger) *TUI {
	return &TUI{
		in:     in,
		out:    out,
		errOut: errOut,
		styles: newStyles(lipgloss.NewRenderer(out)),
		logger: logger,
	}
}

// Confirm shows prompt and waits for a yes/no answer. It returns
// [ErrUserQuit] when the operator aborts with ctrl+c.
func (t *TUI) Confirm(ctx context.Context, prompt string) (bool, error) {
	model := newConfirmModel(prompt, t.styles)

	finalModel, err := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
	).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	result, ok := finalModel.(confirmModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.aborted {
		return false, ErrUserQuit
	}

	t.logger.Debug().
		Str("func", "TUI.Confirm").
		Bool("confirmed", result.confirmed).
		Msg("confirmation answered")

	return result.confirmed, nil
}
