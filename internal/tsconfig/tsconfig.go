// Package tsconfig validates TypeScript compiler configuration files.
//
// tsconfig.json conventionally allows comments, so they are stripped before
// the text is parsed as JSON. The required top-level fields fail validation
// when missing; the listed compiler options only produce warnings.
package tsconfig

import (
	"log/slog"

	"github.com/thoreinstein/preflight/internal/document"
	"github.com/thoreinstein/preflight/internal/validator"
)

// CompilerOptionsKey is the top-level key holding compiler options.
const CompilerOptionsKey = "compilerOptions"

// Options configures a Validator.
type Options struct {
	// RequiredFields must be present at the top level.
	RequiredFields []string
	// CompilerOptions are expected inside compilerOptions; missing ones warn.
	CompilerOptions []string
	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the built-in checklist.
func DefaultOptions() Options {
	return Options{
		RequiredFields:  []string{CompilerOptionsKey},
		CompilerOptions: []string{"target", "module", "moduleResolution"},
	}
}

// Validator checks a tsconfig file. It holds no per-call state.
type Validator struct {
	fields  validator.Checklist
	options validator.Checklist
	logger  *slog.Logger
}

// New creates a Validator from opts.
func New(opts Options) *Validator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Validator{
		fields: validator.Checklist{
			Kind:   "field",
			Fields: validator.RequiredFields(opts.RequiredFields...),
		},
		options: validator.Checklist{
			Kind:   "compiler option",
			Parent: CompilerOptionsKey,
			Fields: validator.OptionalFields(opts.CompilerOptions...),
		},
		logger: logger,
	}
}

// Validate checks the file at path using the default checklist.
func Validate(path string) *validator.Result {
	return New(DefaultOptions()).Validate(path)
}

// Validate reads, strips and parses path, then checks it. All problems are
// recorded in the returned result; it never returns nil.
func (v *Validator) Validate(path string) *validator.Result {
	result := validator.NewResult(path)
	logger := v.logger.With("path", path)

	doc, err := Load(path)
	if err != nil {
		logger.Debug("tsconfig parse failed", "error", err)
		result.AddError("", document.Describe(err), nil)
		return result
	}
	logger.Debug("tsconfig parsed", "keys", len(doc))

	v.fields.Check(result, doc)

	if doc.Has(CompilerOptionsKey) {
		opts, ok := doc.Map(CompilerOptionsKey)
		if !ok {
			result.AddInfo(CompilerOptionsKey, "not an object; treated as empty",
				document.TypeName(doc[CompilerOptionsKey]))
		}
		v.options.Check(result, opts)
	}

	logger.Debug("tsconfig checked", "ok", result.OK(),
		"errors", len(result.Errors()), "warnings", len(result.Warnings()))
	return result
}

// Load reads path, strips comments and parses the remainder as JSON.
func Load(path string) (document.Document, error) {
	data, err := document.Read(path)
	if err != nil {
		return nil, &document.ParseError{Path: path, Err: err}
	}
	return document.Parse(path, StripComments(data))
}
