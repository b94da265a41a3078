package tsconfig

import (
	"bytes"
	"regexp"
)

// commentPattern matches a line comment up to (not including) the newline,
// or the shortest block comment, which may span lines. String literals are
// not recognized, so "http://host" loses everything after the "//".
var commentPattern = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)

// StripComments removes // and /* */ comments from src in a single
// left-to-right pass. Block comments are replaced by the line breaks they
// contained so that parse errors still point at the right line.
func StripComments(src []byte) []byte {
	return commentPattern.ReplaceAllFunc(src, func(m []byte) []byte {
		return bytes.Repeat([]byte{'\n'}, bytes.Count(m, []byte{'\n'}))
	})
}
