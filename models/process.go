// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TerminationOutcome is the result of asking the host OS to terminate the
// target application's processes.
type TerminationOutcome int

const (
	// TerminationTerminated means at least one process was terminated.
	TerminationTerminated TerminationOutcome = iota + 1
	// TerminationNotFound means the OS utility ran but reported no match.
	TerminationNotFound
	// TerminationError means the OS utility could not be run.
	TerminationError
)

func (o TerminationOutcome) String() string {
	switch o {
	case TerminationTerminated:
		return "terminated"
	case TerminationNotFound:
		return "not-found"
	case TerminationError:
		return "error"
	default:
		return "unknown"
	}
}
