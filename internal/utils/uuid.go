// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"io"

	"github.com/google/uuid"
)

// UUIDGenerator produces random (version 4) UUIDs in canonical textual form.
type UUIDGenerator struct {
	rand io.Reader
}

// NewUUIDGenerator returns a generator backed by crypto/rand.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewUUIDGeneratorFromReader returns a generator that draws its 128 random
// bits from r. Used to get reproducible identifiers in tests.
func NewUUIDGeneratorFromReader(r io.Reader) *UUIDGenerator {
	return &UUIDGenerator{rand: r}
}

// Generate returns a new UUID v4 string, e.g.
// "6f1c7e2a-9b0d-4c1e-8a55-3f2d9c7b1e04".
func (g *UUIDGenerator) Generate() string {
	if g.rand == nil {
		return uuid.NewString()
	}

	v4, err := uuid.NewRandomFromReader(g.rand)
	if err != nil {
		return uuid.NewString()
	}

	return v4.String()
}
