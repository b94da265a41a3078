// Package document loads JSON configuration files into string-keyed maps.
//
// A [Document] lives only for the duration of one validation call. Every
// failure to produce one (missing file, oversized file, malformed JSON, a
// top-level value that is not an object) is reported as a [*ParseError].
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thoreinstein/preflight/internal/errors"
)

// MaxFileSize is the largest configuration file Load will read (1 MiB).
const MaxFileSize = 1 << 20

// Document is a parsed configuration file.
type Document map[string]any

// ParseError describes why a file could not be turned into a Document.
// Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.Path, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Describe formats the error without the path, for reports already grouped by file.
func (e *ParseError) Describe() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d, column %d: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("parse error: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, errors.ErrParse) match any ParseError.
func (e *ParseError) Is(target error) bool {
	return target == errors.ErrParse
}

// Load reads path and parses it.
func Load(path string) (Document, error) {
	data, err := Read(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Read reads path, refusing files larger than MaxFileSize.
// A missing file yields an error matching errors.ErrNotFound.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Mark(errors.Wrap(err, "opening file"), errors.ErrNotFound)
		}
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.Size() > MaxFileSize {
		return nil, tooLarge()
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if len(data) > MaxFileSize {
		return nil, tooLarge()
	}
	return data, nil
}

func tooLarge() error {
	return errors.Mark(errors.Newf("file exceeds maximum size of %d bytes", MaxFileSize), errors.ErrFileTooLarge)
}

// Parse decodes data as a JSON object. path is only used for error context.
func Parse(path string, data []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, jsonError(path, data, err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		line, col := firstValuePosition(data)
		return nil, &ParseError{
			Path:   path,
			Line:   line,
			Column: col,
			Err:    errors.Newf("top-level value is %s, expected an object", TypeName(v)),
		}
	}
	return Document(m), nil
}

// Map returns the object stored at key. A missing, null or non-object value
// yields an empty map and false.
func (d Document) Map(key string) (map[string]any, bool) {
	if m, ok := d[key].(map[string]any); ok {
		return m, true
	}
	return map[string]any{}, false
}

// Has reports whether key is present with a non-null value.
func (d Document) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// TypeName names the JSON type of a decoded value.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func jsonError(path string, data []byte, err error) *ParseError {
	pe := &ParseError{Path: path, Err: err}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		pe.Line, pe.Column = offsetToLineCol(data, int(syntaxErr.Offset))
		return pe
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		pe.Line, pe.Column = offsetToLineCol(data, int(typeErr.Offset))
	}
	return pe
}

func firstValuePosition(data []byte) (line, col int) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return offsetToLineCol(data, len(data)-len(trimmed)+1)
}

// offsetToLineCol converts a byte offset to 1-based line and column numbers.
// encoding/json reports the offset just past the offending byte, so the
// column points at the byte itself.
func offsetToLineCol(data []byte, offset int) (line, col int) {
	offset = max(0, min(offset, len(data)))

	line = 1
	lineStart := 0
	for i := range offset {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, max(1, offset-lineStart)
}

// Describe formats err for a report grouped by file. ParseErrors drop their
// path; other errors are returned as-is.
func Describe(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Describe()
	}
	return err.Error()
}
