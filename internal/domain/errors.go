package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrStorage     = errors.New("storage error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Specific errors. Each wraps one of the sentinels above so that callers can
// branch on the broad category or on the exact failure.
var (
	ErrDuplicateName     = fmt.Errorf("%w: project name already exists", ErrConflict)
	ErrInvalidRange      = fmt.Errorf("%w: end date must be after start date", ErrValidation)
	ErrUnknownStage      = fmt.Errorf("%w: unknown stage", ErrValidation)
	ErrNoProjectSelected = fmt.Errorf("%w: no project selected", ErrValidation)
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StorageError wraps a persistence failure with the operation that hit it.
// It matches ErrStorage via errors.Is and exposes the cause via errors.Unwrap.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
}

// Is reports ErrStorage so callers can test the category without knowing Op.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
