package prooftrace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/solverforge/cadet/internal/sat"
)

func TestLoggerEmitsOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.AddInput(1, []sat.Literal{sat.PositiveLiteral(1), sat.NegativeLiteral(2)})
	l.AddDerived(2, []sat.Literal{sat.PositiveLiteral(3)})
	l.AddUnit(3)
	l.Strengthen(2, []sat.Literal{sat.PositiveLiteral(3)})
	l.Delete(1, []sat.Literal{sat.PositiveLiteral(1), sat.NegativeLiteral(2)})
	l.ConcludeUnsat()

	if err := l.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}

	wantPrefixes := []string{"i 1", "l 2", "u 3", "s 2", "d 1", "0"}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
}
