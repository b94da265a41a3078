// Package validator provides the result model shared by preflight's validators.
package validator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityPass records a check that succeeded.
	SeverityPass Severity = iota
	// SeverityInfo indicates an informational note.
	SeverityInfo
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
	// SeverityError indicates a blocking validation failure.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityPass:
		return "pass"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name for JSON and YAML reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pass":
		*s = SeverityPass
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return errors.Newf("unknown severity %q", text)
	}
	return nil
}

// Issue represents a single validation finding.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity `json:"severity" yaml:"severity"`
	// Field is the dotted key the issue is about (empty for file-level issues).
	Field string `json:"field,omitempty" yaml:"field,omitempty"`
	// Message is a human-readable description.
	Message string `json:"message" yaml:"message"`
	// Value is the offending value, if any.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString("field \"")
		sb.WriteString(i.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates the issues found in one file.
type Result struct {
	// Path is the file the result describes.
	Path   string  `json:"path" yaml:"path"`
	Issues []Issue `json:"issues" yaml:"issues"`
}

// NewResult returns an empty result for path.
func NewResult(path string) *Result {
	return &Result{Path: path, Issues: []Issue{}}
}

// OK reports whether the result has no error issues.
func (r *Result) OK() bool {
	return !r.HasErrors()
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return r.count(SeverityError) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return r.count(SeverityWarning) > 0
}

func (r *Result) count(s Severity) int {
	if r == nil {
		return 0
	}
	n := 0
	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}
	return n
}

func (r *Result) add(s Severity, field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: s,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// AddPass records a successful check.
func (r *Result) AddPass(field, message string) {
	r.add(SeverityPass, field, message, nil)
}

// AddInfo adds an info issue to the result.
func (r *Result) AddInfo(field, message string, value any) {
	r.add(SeverityInfo, field, message, value)
}

// AddWarning adds a warning issue to the result.
func (r *Result) AddWarning(field, message string, value any) {
	r.add(SeverityWarning, field, message, value)
}

// AddError adds an error issue to the result.
func (r *Result) AddError(field, message string, value any) {
	r.add(SeverityError, field, message, value)
}

// Errors returns a slice of all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns a slice of all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

// Summary counts issues across results.
type Summary struct {
	Files    int `json:"files" yaml:"files"`
	Passed   int `json:"passed" yaml:"passed"`
	Info     int `json:"info" yaml:"info"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Errors   int `json:"errors" yaml:"errors"`
}

// Summarize totals the issues of every result.
func Summarize(results []*Result) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		s.Passed += r.count(SeverityPass)
		s.Info += r.count(SeverityInfo)
		s.Warnings += r.count(SeverityWarning)
		s.Errors += r.count(SeverityError)
	}
	return s
}

// AllOK is the logical AND of every result's OK.
func AllOK(results []*Result) bool {
	ok := true
	for _, r := range results {
		ok = r.OK() && ok
	}
	return ok
}
