package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/preflight/internal/errors"
)

// PrintError writes err and any suggestion to w. Failed checks print
// nothing because the report already explains them.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errors.ErrValidationFailed) {
		return
	}

	msg := errors.UnwrapAll(err).Error()
	var suggestion string

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			msg = exitErr.Err.Error()
		}
		suggestion = exitErr.Suggestion
	}

	fmt.Fprintf(w, "%s %s\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), msg)
	if suggestion != "" {
		fmt.Fprintf(w, "  %s\n", suggestion)
	}
}
