// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/utils"
	"github.com/MKhiriev/go-id-keeper/models"
)

type identityInspector struct {
	paths     store.PathResolver
	idFiles   store.IDFileRepository
	records   store.RecordRepository
	namespace string

	logger *logger.Logger
}

func NewIdentityInspector(storages *store.Storages, namespace string, logger *logger.Logger) IdentityInspector {
	return &identityInspector{
		paths:     storages.Paths,
		idFiles:   storages.IDFiles,
		records:   storages.Records,
		namespace: namespace,
		logger:    logger,
	}
}

func (i *identityInspector) Inspect(ctx context.Context) models.InspectionReport {
	report := models.InspectionReport{
		Namespace:    i.namespace,
		IDFileValue:  models.NotFound,
		MacMachineID: models.NotFound,
		MachineID:    models.NotFound,
		DevDeviceID:  models.NotFound,
	}

	if path, err := i.paths.Resolve(models.ArtifactIDFile); err == nil {
		report.IDFilePath = path
		if value, readErr := i.idFiles.Read(ctx, path); readErr == nil && value != "" {
			report.IDFileValue = value
		} else if readErr != nil {
			i.logger.Debug().Err(readErr).Str("func", "identityInspector.Inspect").Msg("id file unavailable")
		}
	} else {
		i.logger.Debug().Err(err).Str("func", "identityInspector.Inspect").Msg("id file path unresolved")
	}

	if path, err := i.paths.Resolve(models.ArtifactStorageRecord); err == nil {
		report.RecordPath = path
		if record, loadErr := i.records.Load(ctx, path); loadErr == nil {
			report.MacMachineID = i.lookup(record, models.KeyMacMachineID)
			report.MachineID = i.lookup(record, models.KeyMachineID)
			report.DevDeviceID = i.lookup(record, models.KeyDevDeviceID)
		} else {
			i.logger.Debug().Err(loadErr).Str("func", "identityInspector.Inspect").Msg("storage record unavailable")
		}
	} else {
		i.logger.Debug().Err(err).Str("func", "identityInspector.Inspect").Msg("storage record path unresolved")
	}

	report.Consistent = isConsistent(report)

	return report
}

func (i *identityInspector) lookup(record models.Record, name string) string {
	value, ok := record.GetString(models.ManagedKey(i.namespace, name))
	if !ok || value == "" {
		return models.NotFound
	}
	return value
}

// isConsistent reports whether the artifacts look like the output of a
// single identity update.
func isConsistent(r models.InspectionReport) bool {
	for _, v := range []string{r.IDFileValue, r.MacMachineID, r.MachineID, r.DevDeviceID} {
		if v == models.NotFound {
			return false
		}
	}

	return r.IDFileValue == r.DevDeviceID && r.MachineID == utils.HashString(r.DevDeviceID)
}
