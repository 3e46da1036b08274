// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"io"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/utils"
	"github.com/MKhiriev/go-id-keeper/models"
)

type identityGenerator struct {
	uuids   *utils.UUIDGenerator
	entropy io.Reader

	logger *logger.Logger
}

// NewIdentityGenerator returns a generator drawing from crypto/rand.
func NewIdentityGenerator(logger *logger.Logger) IdentityGenerator {
	return &identityGenerator{
		uuids:  utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// NewIdentityGeneratorFromReader draws the primary id and then the MAC bytes
// from r. It makes generation reproducible in tests.
func NewIdentityGeneratorFromReader(r io.Reader, logger *logger.Logger) IdentityGenerator {
	return &identityGenerator{
		uuids:   utils.NewUUIDGeneratorFromReader(r),
		entropy: r,
		logger:  logger,
	}
}

func (g *identityGenerator) Generate() models.IdentitySet {
	primaryID := g.uuids.Generate()

	mac, err := utils.RandomMAC(g.entropy)
	if err != nil {
		g.logger.Warn().Err(err).
			Str("func", "identityGenerator.Generate").
			Msg("entropy source exhausted, falling back to crypto/rand")
		// crypto/rand does not fail
		mac, _ = utils.RandomMAC(nil)
	}

	return models.IdentitySet{
		PrimaryID:         primaryID,
		SecondaryHashedID: utils.HashString(mac),
		TertiaryHashedID:  utils.HashString(primaryID),
	}
}
