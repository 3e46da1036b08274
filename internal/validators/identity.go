// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-id-keeper/internal/utils"
	"github.com/MKhiriev/go-id-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldPrimaryID targets the UUID v4 primary identifier.
	FieldPrimaryID = "primary_id"

	// FieldSecondaryHashedID targets the hashed MAC-derived identifier.
	FieldSecondaryHashedID = "secondary_hashed_id"

	// FieldTertiaryHashedID targets the hash of the primary identifier,
	// including its derivation from the primary identifier.
	FieldTertiaryHashedID = "tertiary_hashed_id"

	// FieldArtifactKind targets the artifact kind of a backup entry.
	FieldArtifactKind = "artifact_kind"

	// FieldBackupPaths targets the original and backup paths of a backup entry.
	FieldBackupPaths = "backup_paths"
)

const sha256HexLen = 64

// IdentityValidator implements the Validator interface for the identity
// models: IdentitySet and BackupEntry, in value and pointer form.
type IdentityValidator struct {
}

// NewIdentityValidator constructs a new IdentityValidator and returns it as
// the Validator interface.
func NewIdentityValidator() Validator {
	return &IdentityValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// ErrUnsupportedType for any other type.
func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IdentitySet:
		return v.validateIdentitySet(ctx, value, fields...)
	case *models.IdentitySet:
		return v.validateIdentitySet(ctx, *value, fields...)

	case models.BackupEntry:
		return v.validateBackupEntry(ctx, value, fields...)
	case *models.BackupEntry:
		return v.validateBackupEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateIdentitySet checks every identifier by default. The tertiary check
// includes tertiary == sha256(primary).
func (v *IdentityValidator) validateIdentitySet(ctx context.Context, ids models.IdentitySet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrimaryID, FieldSecondaryHashedID, FieldTertiaryHashedID}
	}

	for _, f := range fields {
		switch f {
		case FieldPrimaryID:
			if !isCanonicalUUIDv4(ids.PrimaryID) {
				return ErrInvalidPrimaryID
			}
		case FieldSecondaryHashedID:
			if !isSHA256Hex(ids.SecondaryHashedID) {
				return ErrInvalidSecondaryID
			}
		case FieldTertiaryHashedID:
			if !isSHA256Hex(ids.TertiaryHashedID) {
				return ErrInvalidTertiaryID
			}
			if ids.TertiaryHashedID != utils.HashString(ids.PrimaryID) {
				return ErrTertiaryIDMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *IdentityValidator) validateBackupEntry(ctx context.Context, entry models.BackupEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldArtifactKind, FieldBackupPaths}
	}

	for _, f := range fields {
		switch f {
		case FieldArtifactKind:
			if _, err := models.ParseArtifactKind(entry.Kind.String()); err != nil {
				return ErrInvalidArtifactKind
			}
		case FieldBackupPaths:
			if entry.OriginalPath == "" || entry.BackupPath == "" {
				return ErrEmptyBackupEntryPaths
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isCanonicalUUIDv4 accepts only the lowercase hyphenated RFC 4122 form.
func isCanonicalUUIDv4(s string) bool {
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() == 4 && u.Variant() == uuid.RFC4122 && u.String() == s
}

func isSHA256Hex(s string) bool {
	if len(s) != sha256HexLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
