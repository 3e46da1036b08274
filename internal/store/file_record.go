// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/models"
)

const recordIndent = "  "

type recordRepository struct {
	logger *logger.Logger
}

// NewRecordRepository returns a repository for the structured storage record.
func NewRecordRepository(log *logger.Logger) RecordRepository {
	return &recordRepository{logger: log}
}

// Load reads and decodes the record at path. A record that is not a JSON
// object yields [ErrRecordMalformed].
func (r *recordRepository) Load(ctx context.Context, path string) (models.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadArtifact, path, err)
	}

	record, err := DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return record, nil
}

// Save writes record to path as indented JSON with sorted keys.
func (r *recordRepository) Save(ctx context.Context, path string, record models.Record) error {
	data, err := EncodeRecord(record)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteArtifact, path, err)
	}

	if err = ensureParentDir(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteArtifact, path, err)
	}

	if err = writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteArtifact, path, err)
	}

	r.logger.Debug().
		Str("func", "recordRepository.Save").
		Str("path", path).
		Int("keys", len(record)).
		Msg("storage record written")

	return nil
}

// DecodeRecord parses data as a JSON object.
func DecodeRecord(data []byte) (models.Record, error) {
	var record models.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordMalformed, err)
	}
	// "null" decodes without error into a nil map
	if record == nil {
		return nil, fmt.Errorf("%w: not a json object", ErrRecordMalformed)
	}

	return record, nil
}

// EncodeRecord renders record as two-space indented JSON. encoding/json
// sorts map keys, so the output is stable.
func EncodeRecord(record models.Record) ([]byte, error) {
	if record == nil {
		record = models.NewRecord()
	}

	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", recordIndent)

	if err := enc.Encode(record); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
