// Package errors provides error handling conventions for the preflight CLI.
//
// This package defines sentinel errors for the failure classes preflight
// reports, an ExitError type that carries a process exit code, and
// forwarding helpers for github.com/cockroachdb/errors.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrParse) {
//	    // malformed configuration file
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): every required check passed
//   - ExitUser (1): a check failed, a file is missing, or input was invalid
//   - ExitSystem (2): an environment failure unrelated to the checked files
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. [ExitCode] walks an error chain and returns the code main
// should exit with:
//
//	if err := commands.Execute(); err != nil {
//	    os.Exit(errors.ExitCode(err))
//	}
package errors
