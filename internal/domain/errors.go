package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValidRows is returned when normalization leaves nothing to send.
	ErrNoValidRows = errors.New("no valid rows found in CSV")
	// ErrNoCompleteEntries is returned when no manual entry passes the filter.
	ErrNoCompleteEntries = errors.New("please fill in at least one complete entry")
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
)

// FileParseError means the CSV structure itself could not be read.
type FileParseError struct {
	Err error
}

func (e *FileParseError) Error() string {
	return fmt.Sprintf("failed to parse CSV: %v", e.Err)
}

func (e *FileParseError) Unwrap() error {
	return e.Err
}

// NetworkError wraps a failed call to an external service.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
