package mimekit

import (
	"errors"
	"fmt"
)

// Common detection errors
var (
	ErrNotExist            = errors.New("source does not exist")
	ErrPermission          = errors.New("permission denied")
	ErrRemoteStatus        = errors.New("unexpected HTTP status")
	ErrSchemeNotRegistered = errors.New("no fetcher registered for scheme")
	ErrInvalidSignature    = errors.New("invalid signature definition")
	ErrInvalidConfig       = errors.New("invalid configuration")
)

// SourceError records an error and the operation and source descriptor
// that caused it
type SourceError struct {
	Op     string
	Source string
	Err    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that a file or remote
// resource does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}
