package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/thoreinstein/preflight/internal/errors"
	"github.com/thoreinstein/preflight/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrEmptyName indicates a blank entry in a field list.
	ErrEmptyName = errors.New("empty name")

	// ErrDuplicateName indicates an entry listed more than once.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrInvalidFileName indicates a file name that is not a bare name.
	ErrInvalidFileName = errors.New("invalid file name")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	errs = append(errs, validateFile("package.file", cfg.Package.File)...)
	errs = append(errs, validateNames("package.required_fields", cfg.Package.RequiredFields)...)
	errs = append(errs, validateNames("package.required_scripts", cfg.Package.RequiredScripts)...)
	errs = append(errs, validateNames("package.optional_scripts", cfg.Package.OptionalScripts)...)

	errs = append(errs, overlap("package.optional_scripts", cfg.Package.RequiredScripts, cfg.Package.OptionalScripts)...)

	errs = append(errs, validateFile("tsconfig.file", cfg.TSConfig.File)...)
	errs = append(errs, validateNames("tsconfig.required_fields", cfg.TSConfig.RequiredFields)...)
	errs = append(errs, validateNames("tsconfig.compiler_options", cfg.TSConfig.CompilerOptions)...)

	return errs
}

func validateFile(field, name string) []error {
	if !paths.ValidFileName(name) {
		return []error{&FieldError{Field: field, Value: name, Err: ErrInvalidFileName}}
	}
	return nil
}

func validateNames(field string, names []string) []error {
	var errs []error
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			errs = append(errs, &FieldError{Field: field, Value: n, Err: ErrEmptyName})
		}
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] && strings.TrimSpace(n) != "" {
			errs = append(errs, &FieldError{Field: field, Value: n, Err: ErrDuplicateName})
		}
		seen[n] = true
	}
	return errs
}

// overlap reports optional names that are already required.
func overlap(field string, required, optional []string) []error {
	var errs []error
	for _, n := range optional {
		if slices.Contains(required, n) && strings.TrimSpace(n) != "" {
			errs = append(errs, &FieldError{Field: field, Value: n, Err: ErrDuplicateName})
		}
	}
	return errs
}

// FieldError represents an error for a specific config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + strconv.Quote(e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError collects every problem found in a Config.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Errs
}
