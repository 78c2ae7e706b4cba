package sat

import "strings"

// ClauseID is a monotonically increasing identifier assigned by the arena
// at creation time, used by proof tracers to refer to clauses (spec §4.11).
type ClauseID int64

// Clause is an arena-resident, variable-length clause (spec §3 "Clause").
// Non-binary, non-garbage clauses always keep their two watched literals in
// literals[0] and literals[1]; if the clause is some variable's reason, that
// variable's literal is literals[0].
type Clause struct {
	id ClauseID

	// literals holds the clause body. It is nil once the clause has been
	// physically collected, so a stray reference reads as empty rather than
	// aliasing a reused buffer.
	literals []Literal

	redundant bool // learned (true) vs. original (false)
	garbage   bool // marked for deletion at next reduce
	reason    bool // currently protects the clause as someone's reason

	glue          int32 // LBD at the moment of learning
	resolvedStamp int64 // stats.Resolved value when learned or last resolved through
}

// Size returns the number of literals currently in the clause.
func (c *Clause) Size() int {
	return len(c.literals)
}

// Literals returns the clause's literal slice. Callers must not retain it
// past the next mutation of the clause (simplify, propagate, or delete).
func (c *Clause) Literals() []Literal {
	return c.literals
}

// ID returns the clause's proof-tracer identifier.
func (c *Clause) ID() ClauseID {
	return c.id
}

// Glue returns the clause's literal block distance.
func (c *Clause) Glue() int {
	return int(c.glue)
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// isBinary reports whether c is stored on the binary watch lists rather
// than the long-clause watch lists (spec §4.3).
func (c *Clause) isBinary() bool {
	return len(c.literals) == 2
}
