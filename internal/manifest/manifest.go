// Package manifest validates package.json files.
//
// A manifest must carry a fixed set of top-level fields and a set of
// required scripts. Missing optional scripts are reported as warnings and
// never fail validation.
package manifest

import (
	"log/slog"

	"github.com/thoreinstein/preflight/internal/document"
	"github.com/thoreinstein/preflight/internal/validator"
)

// ScriptsKey is the top-level key holding npm scripts.
const ScriptsKey = "scripts"

// Options configures a Validator.
type Options struct {
	RequiredFields  []string
	RequiredScripts []string
	OptionalScripts []string
	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the built-in checklist.
func DefaultOptions() Options {
	return Options{
		RequiredFields:  []string{"name", "version", ScriptsKey},
		RequiredScripts: []string{"build", "lint"},
		OptionalScripts: []string{"test", "dev", "start", "deploy"},
	}
}

// Validator checks a package.json file.
type Validator struct {
	fields  validator.Checklist
	scripts validator.Checklist
	logger  *slog.Logger
}

// New creates a Validator from opts.
func New(opts Options) *Validator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scripts := append(
		validator.RequiredFields(opts.RequiredScripts...),
		validator.OptionalFields(opts.OptionalScripts...)...,
	)
	return &Validator{
		fields: validator.Checklist{
			Kind:   "field",
			Fields: validator.RequiredFields(opts.RequiredFields...),
		},
		scripts: validator.Checklist{
			Kind:   "script",
			Parent: ScriptsKey,
			Fields: scripts,
		},
		logger: logger,
	}
}

// Validate checks the file at path using the default checklist.
func Validate(path string) *validator.Result {
	return New(DefaultOptions()).Validate(path)
}

// Validate loads path and checks it. The returned result is never nil.
func (v *Validator) Validate(path string) *validator.Result {
	result := validator.NewResult(path)
	logger := v.logger.With("path", path)

	doc, err := document.Load(path)
	if err != nil {
		logger.Debug("manifest parse failed", "error", err)
		result.AddError("", document.Describe(err), nil)
		return result
	}
	logger.Debug("manifest parsed", "keys", len(doc))

	v.fields.Check(result, doc)

	// Scripts are checked even when the key is missing, so every absent
	// script is named in the report.
	scripts, ok := doc.Map(ScriptsKey)
	if !ok && doc.Has(ScriptsKey) {
		result.AddInfo(ScriptsKey, "not an object; treated as empty", document.TypeName(doc[ScriptsKey]))
	}
	v.scripts.Check(result, scripts)

	logger.Debug("manifest checked", "ok", result.OK(),
		"errors", len(result.Errors()), "warnings", len(result.Warnings()))
	return result
}
