// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// Record is the decoded content of the structured storage record.
//
// Values are kept as raw JSON so that keys the tool does not manage are
// written back exactly as they were read.
type Record map[string]json.RawMessage

// NewRecord returns an empty record.
func NewRecord() Record {
	return make(Record)
}

// SetString stores v as a JSON string under key. HTML characters are kept
// as is.
func (r Record) SetString(key, v string) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// encoding a string cannot fail
	_ = enc.Encode(v)
	r[key] = bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}

// GetString returns the string stored under key. ok is false when the key is
// absent or its value is not a JSON string, null included.
func (r Record) GetString(key string) (value string, ok bool) {
	raw, exists := r[key]
	if !exists {
		return "", false
	}

	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", false
	}
	return *s, true
}
