// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactKind_StringRoundTrip(t *testing.T) {
	for _, kind := range []ArtifactKind{ArtifactIDFile, ArtifactStorageRecord} {
		t.Run(kind.String(), func(t *testing.T) {
			parsed, err := ParseArtifactKind(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		})
	}
}

func TestParseArtifactKind_Unknown(t *testing.T) {
	_, err := ParseArtifactKind("settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown artifact kind")
}

func TestManagedKey(t *testing.T) {
	assert.Equal(t, "telemetry.machineId", ManagedKey("telemetry", KeyMachineID))
	assert.Equal(t, "machineId", ManagedKey("", KeyMachineID))
}

func TestIdentitySet_RecordFields(t *testing.T) {
	ids := IdentitySet{PrimaryID: "p", SecondaryHashedID: "s", TertiaryHashedID: "t"}

	fields := ids.RecordFields("telemetry")

	assert.Equal(t, map[string]string{
		"telemetry.macMachineId": "s",
		"telemetry.machineId":    "t",
		"telemetry.devDeviceId":  "p",
	}, fields)
}

func TestRecord_GetString(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"a":"x","b":1,"c":null}`), &rec))

	tests := []struct {
		name  string
		key   string
		want  string
		found bool
	}{
		{name: "string value", key: "a", want: "x", found: true},
		{name: "number value", key: "b", found: false},
		{name: "null value", key: "c", found: false},
		{name: "missing key", key: "d", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rec.GetString(tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecord_SetStringKeepsOtherValues(t *testing.T) {
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(`{"unrelated":{"nested":[1,2]}}`), &rec))

	rec.SetString("telemetry.devDeviceId", "new")

	got, ok := rec.GetString("telemetry.devDeviceId")
	require.True(t, ok)
	assert.Equal(t, "new", got)
	assert.JSONEq(t, `{"nested":[1,2]}`, string(rec["unrelated"]))
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "N/A", AppBuildInfo{}.BuildVersion())
}

func TestTerminationOutcome_String(t *testing.T) {
	assert.Equal(t, "terminated", TerminationTerminated.String())
	assert.Equal(t, "not-found", TerminationNotFound.String())
	assert.Equal(t, "error", TerminationError.String())
	assert.Equal(t, "unknown", TerminationOutcome(0).String())
}

func TestRecord_SetStringDoesNotEscapeHTML(t *testing.T) {
	rec := NewRecord()

	rec.SetString("a", "<b>&</b>")

	assert.Equal(t, `"<b>&</b>"`, string(rec["a"]))
	got, ok := rec.GetString("a")
	require.True(t, ok)
	assert.Equal(t, "<b>&</b>", got)
}

func TestRecord_GetString_ExplicitNull(t *testing.T) {
	rec := Record{"telemetry.machineId": json.RawMessage(`null`)}

	got, ok := rec.GetString("telemetry.machineId")

	assert.False(t, ok)
	assert.Empty(t, got)
}
