// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-id-keeper/models"
)

const (
	identityLabelWidth = 12
	artifactLabelWidth = 14
)

// PrintIdentity shows a freshly generated identity set.
func (t *TUI) PrintIdentity(ids models.IdentitySet) {
	t.write(t.renderPage("NEW IDENTIFIERS", t.identityRows(ids)))
}

// PrintUpdate shows the identifiers that were applied and what happened to
// each artifact. A partially applied update lists only the artifacts that
// were written.
func (t *TUI) PrintUpdate(report models.UpdateReport) {
	var b strings.Builder

	b.WriteString(t.identityRows(report.Identity))
	b.WriteString("\n")
	b.WriteString(t.artifactRow("id file", report.IDFile))
	b.WriteString(t.artifactRow("storage record", report.Record))

	t.write(t.renderPage("IDENTIFIERS UPDATED", b.String()))
}

// PrintInspection shows the identifiers currently on disk.
func (t *TUI) PrintInspection(report models.InspectionReport) {
	var b strings.Builder

	b.WriteString(t.field("id file", artifactLabelWidth, valueOrDash(report.IDFilePath)))
	b.WriteString(t.field("  value", artifactLabelWidth, t.orNotFound(report.IDFileValue)))
	b.WriteString(t.field("storage record", artifactLabelWidth, valueOrDash(report.RecordPath)))
	b.WriteString(t.field("  "+models.ManagedKey(report.Namespace, models.KeyMacMachineID), artifactLabelWidth, t.orNotFound(report.MacMachineID)))
	b.WriteString(t.field("  "+models.ManagedKey(report.Namespace, models.KeyMachineID), artifactLabelWidth, t.orNotFound(report.MachineID)))
	b.WriteString(t.field("  "+models.ManagedKey(report.Namespace, models.KeyDevDeviceID), artifactLabelWidth, t.orNotFound(report.DevDeviceID)))
	b.WriteString("\n")
	if report.Consistent {
		b.WriteString(t.styles.success.Render("identifiers are consistent"))
	} else {
		b.WriteString(t.styles.warning.Render("identifiers are missing or inconsistent"))
	}

	t.write(t.renderPage("CURRENT IDENTIFIERS", b.String()))
}

// PrintDelete shows the outcome of the id file delete flow.
func (t *TUI) PrintDelete(report models.DeleteReport) {
	if report.Cancelled {
		t.write(t.renderPage("DELETE", t.styles.warning.Render("cancelled, "+report.Path+" left untouched")))
		return
	}

	var b strings.Builder
	b.WriteString(t.field("deleted", 7, report.Path))
	b.WriteString(t.field("backup", 7, valueOrDash(report.BackupPath)))

	t.write(t.renderPage("DELETE", b.String()))
}

// PrintTermination shows the result of terminating processName.
func (t *TUI) PrintTermination(processName string, outcome models.TerminationOutcome, err error) {
	var line string
	switch outcome {
	case models.TerminationTerminated:
		line = t.styles.success.Render(processName + " processes terminated")
	case models.TerminationNotFound:
		line = t.styles.warning.Render("no running " + processName + " process found")
	default:
		msg := "could not terminate " + processName
		if err != nil {
			msg += ": " + humanizeError(err)
		}
		line = t.styles.err.Render(msg)
	}

	t.write(t.renderPage("TERMINATE", line))
}

// PrintBackups lists journal entries, newest first.
func (t *TUI) PrintBackups(entries []models.BackupEntry) {
	if len(entries) == 0 {
		t.write(t.renderPage("BACKUPS", "no backups recorded"))
		return
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %-14s  %s\n",
			t.styles.label.Render(e.CreatedAt.Format("2006-01-02 15:04:05")),
			e.Kind.String(),
			e.BackupPath,
		)
	}

	t.write(t.renderPage("BACKUPS", b.String()))
}

// PrintBuildInfo shows the build metadata of the binary.
func (t *TUI) PrintBuildInfo(info models.AppBuildInfo) {
	t.write(t.renderBuildInfo(info))
}

// PrintUsage writes usage text as is.
func (t *TUI) PrintUsage(usage string) {
	t.write(usage)
}

// PrintNotice writes a single informational line.
func (t *TUI) PrintNotice(msg string) {
	t.write(t.styles.app.Render(t.styles.help.Render(msg)) + "\n")
}

// PrintWarning writes a single warning line to the error output.
func (t *TUI) PrintWarning(msg string) {
	t.writeErr(t.styles.app.Render(t.styles.warning.Render("warning: "+msg)) + "\n")
}

// PrintError writes err to the error output.
func (t *TUI) PrintError(err error) {
	if err == nil {
		return
	}
	t.writeErr(t.styles.app.Render(t.styles.err.Render("error: ")+humanizeError(err)) + "\n")
}

func (t *TUI) identityRows(ids models.IdentitySet) string {
	var b strings.Builder
	b.WriteString(t.field(models.KeyMacMachineID, identityLabelWidth, ids.SecondaryHashedID))
	b.WriteString(t.field(models.KeyMachineID, identityLabelWidth, ids.TertiaryHashedID))
	b.WriteString(t.field(models.KeyDevDeviceID, identityLabelWidth, ids.PrimaryID))
	return b.String()
}

func (t *TUI) artifactRow(label string, update *models.ArtifactUpdate) string {
	if update == nil {
		return t.field(label, artifactLabelWidth, t.styles.warning.Render("not written"))
	}

	var b strings.Builder
	b.WriteString(t.field(label, artifactLabelWidth, update.Path))
	switch {
	case update.Created:
		b.WriteString(t.field("  backup", artifactLabelWidth, "none, file created"))
	default:
		b.WriteString(t.field("  backup", artifactLabelWidth, update.BackupPath))
	}
	if update.DiscardedMalformed {
		b.WriteString(t.styles.warning.Render("  unreadable content replaced, original kept in backup"))
		b.WriteString("\n")
	}
	return b.String()
}

func (t *TUI) orNotFound(v string) string {
	if v == "" || v == models.NotFound {
		return t.styles.warning.Render(models.NotFound)
	}
	return v
}

func (t *TUI) write(s string) {
	if _, err := fmt.Fprint(t.out, s); err != nil {
		t.logger.Err(err).Str("func", "TUI.write").Msg("console write failed")
	}
}

func (t *TUI) writeErr(s string) {
	if _, err := fmt.Fprint(t.errOut, s); err != nil {
		t.logger.Err(err).Str("func", "TUI.writeErr").Msg("console write failed")
	}
}
