// Package errors provides sentinel errors for the pydist CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrParse indicates the descriptor document is malformed.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates the descriptor is well-formed but violates a
	// schema rule (bad version string, conflicting dynamic declaration, ...).
	ErrValidation = errors.New("validation error")

	// ErrConstraint indicates the invoking tool's version does not satisfy
	// the descriptor's build requirements.
	ErrConstraint = errors.New("constraint not satisfied")

	// ErrMissingFile indicates a file referenced by a dynamic field does not
	// exist or is empty.
	ErrMissingFile = errors.New("missing file")

	// ErrEmptyPackage indicates package discovery matched zero packages.
	ErrEmptyPackage = errors.New("empty package set")

	// ErrNotFound indicates a descriptor or referenced path was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path (and line, when known) the error refers to.
	Location string

	// Field is the descriptor key for schema errors (e.g. "project.version").
	Field string

	// Context contains additional key-value context.
	Context map[string]string

	// Hint provides actionable guidance.
	Hint string

	// Cause is the underlying error, usually one of the sentinels.
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a parse error with details.
func NewParseError(message, location, hint string) error {
	return &DetailError{
		Type:     "descriptor malformed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrParse,
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewConstraintError creates a build-requirement constraint error.
func NewConstraintError(message string, context map[string]string, hint string) error {
	return &DetailError{
		Type:    "constraint not satisfied",
		Message: message,
		Context: context,
		Hint:    hint,
		Cause:   ErrConstraint,
	}
}

// NewMissingFileError creates a missing-file error for a dynamic field.
func NewMissingFileError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "missing file",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrMissingFile,
	}
}

// NewEmptyPackageError creates an empty-discovery error.
func NewEmptyPackageError(message, location, hint string) error {
	return &DetailError{
		Type:     "empty package set",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrEmptyPackage,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed reports whether the command layer already rendered the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
