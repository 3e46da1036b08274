package service

import (
	"github.com/MKhiriev/go-id-keeper/internal/adapter"
	"github.com/MKhiriev/go-id-keeper/internal/config"
	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/internal/store"
	"github.com/MKhiriev/go-id-keeper/internal/validators"
	"github.com/MKhiriev/go-id-keeper/models"
)

type Services struct {
	IdentityGenerator    IdentityGenerator
	RecordUpdater        RecordUpdater
	IdentityInspector    IdentityInspector
	DeleteService        DeleteService
	ProcessService       ProcessService
	BackupHistoryService BackupHistoryService
	AppInfoService       AppInfoService
}

func NewServices(
	storages *store.Storages,
	terminator adapter.ProcessTerminator,
	confirmer Confirmer,
	cfg config.ClientApp,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	validator := validators.NewIdentityValidator()

	return &Services{
		IdentityGenerator:    NewIdentityGenerator(logger),
		RecordUpdater:        NewRecordUpdater(storages, cfg.TelemetryNamespace, validator, logger),
		IdentityInspector:    NewIdentityInspector(storages, cfg.TelemetryNamespace, logger),
		DeleteService:        NewDeleteService(storages, confirmer, validator, logger),
		ProcessService:       NewProcessService(terminator, cfg.ProcessName, logger),
		BackupHistoryService: NewBackupHistoryService(storages.Journal, logger),
		AppInfoService:       NewAppInfoService(buildInfo, logger),
	}
}
