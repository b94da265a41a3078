// Package check runs the configuration file checks and aggregates their
// results into a single report.
package check

import (
	"log/slog"
	"os"
	"time"

	"github.com/thoreinstein/preflight/internal/validator"
)

// NotFoundMessage is the issue message recorded for a missing file.
const NotFoundMessage = "file not found"

// Check is implemented by anything the Runner can execute.
type Check interface {
	// Name identifies the check in logs.
	Name() string

	// Run executes the check. It must never return nil.
	Run() *validator.Result
}

// ValidateFunc validates the file at path.
type ValidateFunc func(path string) *validator.Result

// FileCheck validates one file, provided it exists.
type FileCheck struct {
	name     string
	path     string
	validate ValidateFunc
}

// NewFileCheck creates a check that runs fn against path.
func NewFileCheck(name, path string, fn ValidateFunc) *FileCheck {
	return &FileCheck{name: name, path: path, validate: fn}
}

// Name returns the check name.
func (c *FileCheck) Name() string { return c.name }

// Path returns the file the check validates.
func (c *FileCheck) Path() string { return c.path }

// Run stats the file first. A missing file fails the check without calling
// the validator.
func (c *FileCheck) Run() *validator.Result {
	if _, err := os.Stat(c.path); err != nil {
		result := validator.NewResult(c.path)
		if os.IsNotExist(err) {
			result.AddError("", NotFoundMessage, nil)
		} else {
			result.AddError("", "cannot access file: "+err.Error(), nil)
		}
		return result
	}
	return c.validate(c.path)
}

// Runner executes checks in registration order.
type Runner struct {
	checks []Check
	logger *slog.Logger
}

// NewRunner creates an empty Runner. A nil logger means slog.Default().
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		checks: make([]Check, 0),
		logger: logger,
	}
}

// AddCheck registers c.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Len returns the number of registered checks.
func (r *Runner) Len() int {
	return len(r.checks)
}

// Run executes every registered check. A failing check does not stop the
// ones after it.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*validator.Result, 0, len(r.checks)),
	}

	for _, c := range r.checks {
		start := time.Now()
		result := c.Run()
		r.logger.Debug("check finished",
			"check", c.Name(),
			"path", result.Path,
			"ok", result.OK(),
			"duration", time.Since(start))
		report.Results = append(report.Results, result)
	}

	report.Summary = validator.Summarize(report.Results)
	return report
}

// Report aggregates the results of one run.
type Report struct {
	Timestamp time.Time           `json:"timestamp"`
	Results   []*validator.Result `json:"results"`
	Summary   validator.Summary   `json:"summary"`
}

// OK reports whether every result passed.
func (r *Report) OK() bool {
	return validator.AllOK(r.Results)
}
