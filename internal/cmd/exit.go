package cmd

import (
	"errors"

	perrors "github.com/pydist/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates the descriptor is malformed or violates
	// a schema rule.
	ExitValidationError = 2

	// ExitConstraintError indicates the tool version does not satisfy the
	// descriptor's build requirements.
	ExitConstraintError = 3

	// ExitMissingFileError indicates a dynamic field references a missing or
	// empty file.
	ExitMissingFileError = 4

	// ExitEmptyPackageError indicates discovery matched zero packages under
	// --strict.
	ExitEmptyPackageError = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitConstraintError:
		return "Constraint Error"
	case ExitMissingFileError:
		return "Missing File"
	case ExitEmptyPackageError:
		return "Empty Package Set"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *perrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, perrors.ErrParse), errors.Is(err, perrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, perrors.ErrConstraint):
		return ExitConstraintError
	case errors.Is(err, perrors.ErrMissingFile):
		return ExitMissingFileError
	case errors.Is(err, perrors.ErrEmptyPackage):
		return ExitEmptyPackageError
	default:
		return ExitGeneralError
	}
}

// exitWith renders an error and wraps it with its exit code. The main
// function only prints errors the command layer has not already rendered.
// Errors that are already ExitErrors pass through untouched so their
// Printed flag survives.
func exitWith(err error) error {
	var exitErr *perrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &perrors.ExitError{Err: err, Code: ExitCodeFromError(err)}
}
