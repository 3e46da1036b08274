// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"io/fs"

	"github.com/MKhiriev/go-id-keeper/internal/store"
)

var ErrUserQuit = errors.New("quit by user")

// humanizeError turns the errors operators hit most often into a hint on
// how to fix them.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, fs.ErrPermission):
		return err.Error() + "\nhint: run idkeeper with administrator privileges"
	case errors.Is(err, store.ErrNoBaseDirectory):
		return err.Error() + "\nhint: pass the directory explicitly with -base-dir"
	case errors.Is(err, store.ErrJournalDisabled):
		return "the backup journal is disabled"
	}

	return err.Error()
}
