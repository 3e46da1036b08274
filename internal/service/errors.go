package service

import "errors"

var (
	ErrInvalidIdentity = errors.New("invalid identity set")
	ErrConfirmation    = errors.New("confirmation failed")
)
