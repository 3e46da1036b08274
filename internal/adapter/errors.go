package adapter

import "errors"

var (
	ErrEmptyProcessName = errors.New("process name is required")
	ErrCommandTimedOut  = errors.New("command timed out")
	ErrCommandCancelled = errors.New("command cancelled")
	ErrCommandFailed    = errors.New("command execution failed")
)
