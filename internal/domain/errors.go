package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidState    = errors.New("operation not allowed in current status")
	ErrExternalService = errors.New("external service failure")
)
