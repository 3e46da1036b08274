// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_GeneratesV4(t *testing.T) {
	g := NewUUIDGenerator()

	for i := 0; i < 32; i++ {
		s := g.Generate()
		parsed, err := uuid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		assert.Equal(t, uuid.RFC4122, parsed.Variant())
		assert.Equal(t, parsed.String(), s, "must be canonical lowercase form")
	}
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	assert.NotEqual(t, g.Generate(), g.Generate())
}

func TestUUIDGenerator_FromReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0xab}, 16)

	a := NewUUIDGeneratorFromReader(bytes.NewReader(seed)).Generate()
	b := NewUUIDGeneratorFromReader(bytes.NewReader(seed)).Generate()

	assert.Equal(t, a, b)
	assert.Equal(t, "abababab-abab-4bab-abab-abababababab", a)
}

func TestUUIDGenerator_ShortReaderFallsBack(t *testing.T) {
	g := NewUUIDGeneratorFromReader(bytes.NewReader([]byte{1, 2}))

	_, err := uuid.Parse(g.Generate())
	assert.NoError(t, err)
}
