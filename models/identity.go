// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Names of the record keys managed by the tool. On disk every key is
// prefixed with the telemetry namespace, see [ManagedKey].
const (
	KeyMacMachineID = "macMachineId"
	KeyMachineID    = "machineId"
	KeyDevDeviceID  = "devDeviceId"
)

// NotFound is the marker reported for identifiers that could not be read.
const NotFound = "not found"

// IdentitySet is the tuple of identifiers generated and applied as one unit.
//
// TertiaryHashedID is always the SHA-256 of PrimaryID generated in the same
// operation. SecondaryHashedID is derived from independent random material.
type IdentitySet struct {
	// PrimaryID is a canonical UUID v4 string. It is written verbatim to the
	// id file and to the devDeviceId record key.
	PrimaryID string

	// SecondaryHashedID is the lowercase hex SHA-256 of a random MAC-like
	// string. Stored under macMachineId.
	SecondaryHashedID string

	// TertiaryHashedID is the lowercase hex SHA-256 of PrimaryID.
	// Stored under machineId.
	TertiaryHashedID string
}

// ManagedKey returns the full record key for name under namespace,
// e.g. ManagedKey("telemetry", KeyMachineID) == "telemetry.machineId".
func ManagedKey(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// RecordFields maps the fully-qualified managed keys to the values of s.
func (s IdentitySet) RecordFields(namespace string) map[string]string {
	return map[string]string{
		ManagedKey(namespace, KeyMacMachineID): s.SecondaryHashedID,
		ManagedKey(namespace, KeyMachineID):    s.TertiaryHashedID,
		ManagedKey(namespace, KeyDevDeviceID):  s.PrimaryID,
	}
}
