// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured command and returns when it is done.
	Run(ctx context.Context) error
}

// Console renders command results for the operator.
type Console interface {
	PrintIdentity(ids models.IdentitySet)
	PrintUpdate(report models.UpdateReport)
	PrintInspection(report models.InspectionReport)
	PrintDelete(report models.DeleteReport)
	PrintTermination(processName string, outcome models.TerminationOutcome, err error)
	PrintBackups(entries []models.BackupEntry)
	PrintBuildInfo(info models.AppBuildInfo)
	PrintUsage(usage string)
	PrintNotice(msg string)
	PrintWarning(msg string)
	PrintError(err error)
}
