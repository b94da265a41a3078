package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces machine-readable YAML output.
	FormatYAML Format = "yaml"
)

// Formats lists the accepted report formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Newf("unknown format %q (valid: %s)", s, strings.Join(Formats(), ", "))
	}
}

// SuccessMessage is the final line printed when every file passed.
const SuccessMessage = "All configuration checks passed"

// Status glyphs used in text output.
const (
	GlyphPass    = "✓"
	GlyphInfo    = "ℹ"
	GlyphWarning = "⚠"
	GlyphError   = "✗"
)

// Glyph returns the status glyph for s.
func Glyph(s Severity) string {
	switch s {
	case SeverityPass:
		return GlyphPass
	case SeverityInfo:
		return GlyphInfo
	case SeverityWarning:
		return GlyphWarning
	case SeverityError:
		return GlyphError
	default:
		return "?"
	}
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// report is the machine-readable document for JSON and YAML output.
type report struct {
	OK      bool      `json:"ok" yaml:"ok"`
	Summary Summary   `json:"summary" yaml:"summary"`
	Results []*Result `json:"results" yaml:"results"`
}

// Report writes every result in order.
func (r *Reporter) Report(results []*Result) error {
	doc := report{
		OK:      AllOK(results),
		Summary: Summarize(results),
		Results: results,
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(doc)
	case FormatYAML:
		return r.reportYAML(doc)
	default:
		return r.reportText(doc)
	}
}

func (r *Reporter) reportJSON(doc report) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "encoding JSON report")
}

func (r *Reporter) reportYAML(doc report) error {
	encoder := yaml.NewEncoder(r.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding YAML report")
	}
	return errors.Wrap(encoder.Close(), "closing YAML encoder")
}

// reportText writes one block per file followed by the success line when
// every file passed. A failing run has no closing summary line.
func (r *Reporter) reportText(doc report) error {
	for i, result := range doc.Results {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		r.printResult(result)
	}

	if doc.OK && len(doc.Results) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, color.GreenString("%s %s", GlyphPass, SuccessMessage))
	}
	return nil
}

func (r *Reporter) printResult(result *Result) {
	fmt.Fprintln(r.out, color.New(color.Bold).Sprintf("Checking %s", result.Path))

	for _, issue := range result.Issues {
		r.printIssue(issue)
	}

	errs := len(result.Errors())
	warns := len(result.Warnings())
	switch {
	case errs > 0:
		fmt.Fprintln(r.out, color.RedString("%s %s failed: %d error(s), %d warning(s)",
			GlyphError, result.Path, errs, warns))
	case warns > 0:
		fmt.Fprintln(r.out, color.GreenString("%s %s passed", GlyphPass, result.Path)+
			color.YellowString(" with %d warning(s)", warns))
	default:
		fmt.Fprintln(r.out, color.GreenString("%s %s passed", GlyphPass, result.Path))
	}
}

func (r *Reporter) printIssue(i Issue) {
	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(glyphColor(i.Severity).Sprint(Glyph(i.Severity)))
	sb.WriteString(" ")

	if i.Field != "" {
		sb.WriteString(i.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}

func glyphColor(s Severity) *color.Color {
	switch s {
	case SeverityError:
		return color.New(color.FgRed)
	case SeverityWarning:
		return color.New(color.FgYellow)
	case SeverityInfo:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgGreen)
	}
}
