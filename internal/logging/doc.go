// Package logging provides structured logging for the preflight CLI using slog.
//
// Logs always go to stderr so that the validation report on stdout stays
// clean for CI logs. The text handler is colorized only when stderr is a
// terminal.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//
// Deeper code retrieves it with [FromContext], which falls back to
// slog.Default().
//
// # Testing
//
// Use [ForTest] to route log output through t.Log:
//
//	logger := logging.ForTest(t)
package logging
