package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for the preflight CLI.
const (
	// ExitSuccess indicates every required check passed.
	ExitSuccess = 0

	// ExitUser indicates a failed check, a missing file, or invalid input.
	ExitUser = 1

	// ExitSystem indicates an I/O or environment failure outside the checks.
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates a configuration file does not exist.
	ErrNotFound = crdb.New("file not found")

	// ErrParse indicates a configuration file could not be parsed.
	ErrParse = crdb.New("parse error")

	// ErrFileTooLarge indicates a configuration file exceeded the read limit.
	ErrFileTooLarge = crdb.New("file too large")

	// ErrInvalidConfig indicates preflight's own settings failed validation.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrValidationFailed indicates at least one required check failed.
	ErrValidationFailed = crdb.New("validation failed")
)

// Forwarded from cockroachdb/errors so callers get stack traces without
// importing two errors packages.
var (
	New       = crdb.New
	Newf      = crdb.Newf
	Wrap      = crdb.Wrap
	Wrapf     = crdb.Wrapf
	Is        = crdb.Is
	As        = crdb.As
	Mark      = crdb.Mark
	UnwrapAll = crdb.UnwrapAll
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError for unusable preflight settings.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        crdb.Mark(err, ErrInvalidConfig),
		Code:       ExitUser,
		Suggestion: "Check preflight.yaml or the file passed to --config",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the process exit code for err.
// A nil error maps to ExitSuccess and an error without an ExitError in its
// chain maps to ExitUser.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
