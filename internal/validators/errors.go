package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPrimaryID      = errors.New("primary id must be a canonical UUID v4")
	ErrInvalidSecondaryID    = errors.New("secondary hashed id must be 64 lowercase hex characters")
	ErrInvalidTertiaryID     = errors.New("tertiary hashed id must be 64 lowercase hex characters")
	ErrTertiaryIDMismatch    = errors.New("tertiary hashed id is not the SHA-256 of the primary id")
	ErrInvalidArtifactKind   = errors.New("invalid artifact kind")
	ErrEmptyBackupEntryPaths = errors.New("backup entry paths are required")
)
