package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)
