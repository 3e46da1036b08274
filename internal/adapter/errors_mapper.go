package adapter

import (
	"github.com/MKhiriev/go-id-keeper/models"
)

// mapCommandResult converts the run of a termination utility into an
// outcome. Exit code 0 means at least one process was stopped; any other
// exit code is reported as "not found", matching both pkill (1 = no match)
// and taskkill (128 = not found).
func mapCommandResult(result commandResult, err error) (models.TerminationOutcome, error) {
	if err != nil {
		return models.TerminationError, err
	}

	if result.ExitCode == 0 {
		return models.TerminationTerminated, nil
	}

	return models.TerminationNotFound, nil
}
