// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-id-keeper/models"
)

func (t *TUI) renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(t.field("Application", 11, "idkeeper"))
	b.WriteString(t.field("Version", 11, valueOrNA(info.BuildVersion())))
	b.WriteString(t.field("Build date", 11, valueOrNA(info.BuildDate())))
	b.WriteString(t.field("Commit", 11, valueOrNA(info.BuildCommit())))

	return t.renderPage("BUILD INFO", b.String())
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
