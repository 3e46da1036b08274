package service

import (
	"context"

	"github.com/MKhiriev/go-id-keeper/internal/adapter"
	"github.com/MKhiriev/go-id-keeper/internal/logger"
	"github.com/MKhiriev/go-id-keeper/models"
)

type processService struct {
	terminator  adapter.ProcessTerminator
	processName string

	logger *logger.Logger
}

func NewProcessService(terminator adapter.ProcessTerminator, processName string, logger *logger.Logger) ProcessService {
	return &processService{
		terminator:  terminator,
		processName: processName,
		logger:      logger,
	}
}

func (s *processService) Terminate(ctx context.Context) (models.TerminationOutcome, error) {
	outcome, err := s.terminator.TerminateByName(ctx, s.processName)

	s.logger.Info().
		Str("func", "processService.Terminate").
		Str("process", s.processName).
		Stringer("outcome", outcome).
		Msg("terminate requested")

	return outcome, err
}
