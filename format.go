// format.go — fmt.Formatter implementation for Traced.
//
// Behavior:
//
//	%s, %v   → concise string (Error(); inner message only, never the trace).
//	%q       → quoted concise string.
//	%+v      → verbose multi-line form:
//	             <inner error message>
//	             error trace:
//	             <function>
//	               at <file>:<line>
//	             ...
//
// Rationale:
//   - The concise verbs keep the load-bearing "message only" contract; logs
//     that want frames opt in with %+v or Render.
//   - The "error trace:" label lives here (and in Render), on the caller
//     side of the Trace rendering contract — Trace.String stays label-free.
package xgxtraced

import (
	"fmt"
	"io"
)

func (t *Traced) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, t)
			return
		}
		formatConcise(s, t)
	case 's':
		formatConcise(s, t)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", t.Error())
	default:
		formatConcise(s, t)
	}
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, t *Traced) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, t.Error())
}

// formatVerbose writes the message followed by the labelled trace block.
// An empty trace (possible only via Compose with an empty Trace) omits the
// block entirely.
func formatVerbose(w io.Writer, t *Traced) {
	_, _ = io.WriteString(w, t.Error())
	if len(t.trace) == 0 {
		return
	}
	_, _ = io.WriteString(w, "\nerror trace:")
	for _, f := range t.trace {
		_, _ = io.WriteString(w, "\n")
		_, _ = io.WriteString(w, f.String())
	}
}
