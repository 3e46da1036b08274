// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
)

const (
	backupInfix      = "_backup_"
	backupTimeLayout = "20060102_150405"

	// maxBackupAttempts bounds the "_N" suffixes tried when several
	// backups of the same artifact are taken within one second.
	maxBackupAttempts = 100
)

type backupManager struct {
	now    func() time.Time
	logger *logger.Logger
}

// NewBackupManager returns a [BackupManager] that copies artifacts to
// "<name>_backup_<YYYYMMDD_HHMMSS>" siblings using the local time.
func NewBackupManager(log *logger.Logger) BackupManager {
	return &backupManager{
		now:    time.Now,
		logger: log,
	}
}

func (b *backupManager) BackupIfExists(ctx context.Context, path string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	src, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %s: %w", ErrBackupFailed, path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrBackupFailed, path, err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("%w: %s: is a directory", ErrBackupFailed, path)
	}

	perm := info.Mode().Perm()
	dst, backupPath, err := createExclusive(BackupName(path, b.now()), perm)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrBackupFailed, path, err)
	}

	if err = copyAndClose(dst, src, perm); err != nil {
		_ = os.Remove(backupPath)
		b.logger.Err(err).
			Str("func", "backupManager.BackupIfExists").
			Str("path", path).
			Str("backup_path", backupPath).
			Msg("partial backup removed")
		return "", false, fmt.Errorf("%w: %s: %w", ErrBackupFailed, path, err)
	}

	b.logger.Debug().
		Str("func", "backupManager.BackupIfExists").
		Str("path", path).
		Str("backup_path", backupPath).
		Msg("artifact backed up")

	return backupPath, true, nil
}

// BackupName returns the backup location of path for the moment at.
func BackupName(path string, at time.Time) string {
	return path + backupInfix + at.Format(backupTimeLayout)
}

// createExclusive creates base, or base_1, base_2, ... when base is taken,
// so an earlier backup is never overwritten.
func createExclusive(base string, perm fs.FileMode) (*os.File, string, error) {
	for attempt := 0; attempt < maxBackupAttempts; attempt++ {
		name := base
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d", base, attempt)
		}

		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err == nil {
			return f, name, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}

	return nil, "", fmt.Errorf("no free backup name for %s", base)
}

func copyAndClose(dst *os.File, src io.Reader, perm fs.FileMode) error {
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Chmod(perm); err != nil {
		_ = dst.Close()
		return err
	}
	if err := dst.Sync(); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
