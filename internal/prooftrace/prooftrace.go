// Package prooftrace is a minimal, human-readable sat.ProofTracer, one of
// the "supplemented" features of the expanded specification: the core spec
// defines the proof event interface (§4.11) but leaves every emitter out of
// scope, so this package gives the CLI something concrete to attach with
// -proof instead of shipping the interface with no implementation at all.
package prooftrace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/solverforge/cadet/internal/sat"
)

// Logger is a sat.ProofTracer that writes one line per event in a simple
// textual notation loosely modeled on DRAT ("i" input, "l" learned, "u"
// unit, "d" delete, "s" strengthen, "0" for the concluding empty clause).
// It does not attempt to produce a checkable proof format; see spec §6
// "Proof output format" (out of scope) for why.
type Logger struct {
	w *bufio.Writer
}

// NewLogger wraps w in a buffered writer. Callers must call Close when done
// to flush the buffer.
func NewLogger(w io.Writer) *Logger {
	return &Logger{w: bufio.NewWriter(w)}
}

// Close flushes any buffered output.
func (l *Logger) Close() error {
	return l.w.Flush()
}

func (l *Logger) AddInput(id sat.ClauseID, literals []sat.Literal) {
	fmt.Fprintf(l.w, "i %d %s\n", id, formatLiterals(literals))
}

func (l *Logger) AddDerived(id sat.ClauseID, literals []sat.Literal) {
	fmt.Fprintf(l.w, "l %d %s\n", id, formatLiterals(literals))
}

func (l *Logger) AddUnit(literal int) {
	fmt.Fprintf(l.w, "u %d\n", literal)
}

func (l *Logger) Delete(id sat.ClauseID, literals []sat.Literal) {
	fmt.Fprintf(l.w, "d %d %s\n", id, formatLiterals(literals))
}

func (l *Logger) Strengthen(id sat.ClauseID, literalsRemaining []sat.Literal) {
	fmt.Fprintf(l.w, "s %d %s\n", id, formatLiterals(literalsRemaining))
}

func (l *Logger) ConcludeUnsat() {
	fmt.Fprintln(l.w, "0")
}

func formatLiterals(literals []sat.Literal) string {
	buf := make([]byte, 0, len(literals)*4)
	for i, lit := range literals {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = fmt.Appendf(buf, "%d", lit.Int())
	}
	return string(buf)
}
