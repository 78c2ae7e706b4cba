package sat

// ProofTracer is the capability set the core emits clausal-proof events to
// (spec §4.11). Implementations (DRAT/LRAT/FRAT emitters, loggers, ...) are
// external collaborators; the core only depends on this interface.
type ProofTracer interface {
	// AddInput is called once per original clause at parse/add time.
	AddInput(id ClauseID, literals []Literal)
	// AddDerived is called after each learned clause, before it is ever
	// used as a reason.
	AddDerived(id ClauseID, literals []Literal)
	// AddUnit is called for each root-level unit assignment.
	AddUnit(literal int)
	// Delete is called when a clause is garbage collected.
	Delete(id ClauseID, literals []Literal)
	// Strengthen is called when root-false literals are flushed from a
	// clause during reduce, with the literals remaining afterwards.
	Strengthen(id ClauseID, literalsRemaining []Literal)
	// ConcludeUnsat is called exactly once, when the empty clause is
	// derived.
	ConcludeUnsat()
}

// trace invokes fn with the attached tracer, if any. Centralizing the nil
// check here keeps call sites a single line and avoids paying for the
// closure-argument evaluation when no tracer is attached... except that in
// Go the closure is still constructed; callers that are hot paths (arena
// allocation, assign) keep the check cheap since fn's body only runs when
// s.tracer != nil.
func (s *Solver) trace(fn func(t ProofTracer)) {
	if s.tracer != nil {
		fn(s.tracer)
	}
}

// ConnectProof attaches a proof sink. It replaces any previously attached
// tracer.
func (s *Solver) ConnectProof(t ProofTracer) {
	s.tracer = t
}

// DisconnectProof detaches the current proof sink, if any.
func (s *Solver) DisconnectProof() {
	s.tracer = nil
}
