// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
)

type idFileRepository struct {
	logger *logger.Logger
}

// NewIDFileRepository returns a repository for the plain-text id file.
func NewIDFileRepository(log *logger.Logger) IDFileRepository {
	return &idFileRepository{logger: log}
}

// Read returns the id file content trimmed of surrounding whitespace.
func (r *idFileRepository) Read(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadArtifact, path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Write replaces the id file content with id, creating parent directories.
func (r *idFileRepository) Write(ctx context.Context, path, id string) error {
	if err := ensureParentDir(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteArtifact, path, err)
	}

	if err := writeFileAtomic(path, []byte(id)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteArtifact, path, err)
	}

	r.logger.Debug().
		Str("func", "idFileRepository.Write").
		Str("path", path).
		Msg("id file written")

	return nil
}

func (r *idFileRepository) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRemoveArtifact, path, err)
	}

	r.logger.Debug().
		Str("func", "idFileRepository.Remove").
		Str("path", path).
		Msg("id file removed")

	return nil
}
