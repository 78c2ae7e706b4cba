package sat

import "fmt"

// Literal is the packed, unsigned representation of a signed DIMACS literal:
// for variable v (1-based) it is 2*v for the positive occurrence and 2*v+1
// for the negative one. This is the "unsigned literal index" of spec §3 and
// is what indexes every per-literal array in the solver (watch lists,
// assignment cells). Variable 0 is reserved and never assigned, so that the
// zero Literal value is never a valid literal.
type Literal int32

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// LiteralFromInt converts a signed DIMACS literal (nonzero, |lit| == v) into
// its packed Literal form. It is the inverse of Literal.Int.
func LiteralFromInt(lit int) Literal {
	if lit < 0 {
		return NegativeLiteral(-lit)
	}
	return PositiveLiteral(lit)
}

// Int converts l back to the signed DIMACS literal it was built from.
func (l Literal) Int() int {
	if l.IsPositive() {
		return l.VarID()
	}
	return -l.VarID()
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal represents the value of
// its boolean variable (i.e. not its negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of l.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("-%d", l.VarID())
}
