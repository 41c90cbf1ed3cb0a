package cli

import (
	"fmt"
	"io"

	"github.com/ppiankov/connectives/internal/errors"
)

// ReportError prints a human-readable message for err, one line per kind
// plus any hints attached along the way.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	switch errors.Kind(err) {
	case errors.ErrMissingInputFile:
		fmt.Fprintf(w, "✗ Missing input file: %v\n", err)
	case errors.ErrHeterogeneousGroup:
		fmt.Fprintf(w, "✗ Heterogeneous groups: %v\n", err)
	default:
		fmt.Fprintf(w, "✗ Error: %v\n", err)
	}

	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}
