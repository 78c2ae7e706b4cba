package sat

import "testing"

func TestVMTFMoveToFrontReordersQueue(t *testing.T) {
	s := newTestSolver(t, 3)

	// Initial queue order (head -> tail) is 1, 2, 3; tail is 3.
	if s.vmtf.tail != 3 {
		t.Fatalf("initial tail = %d, want 3", s.vmtf.tail)
	}

	s.vmtfMoveToFront(1)

	if s.vmtf.tail != 1 {
		t.Errorf("tail after moveToFront(1) = %d, want 1", s.vmtf.tail)
	}
	if s.vars[1].bumped <= s.vars[3].bumped {
		t.Errorf("bumped(1)=%d should exceed bumped(3)=%d after moveToFront", s.vars[1].bumped, s.vars[3].bumped)
	}
}

func TestVMTFPeekNextSkipsAssignedVariables(t *testing.T) {
	s := newTestSolver(t, 3)
	s.vmtf.searchHint = s.vmtf.tail // = 3

	s.assign(PositiveLiteral(3), nil)
	s.assign(PositiveLiteral(2), nil)

	if got := s.vmtfPeekNext(); got != 1 {
		t.Errorf("vmtfPeekNext() = %d, want 1 (only unassigned variable)", got)
	}
	// Peeking must not have consumed the hint.
	if s.vmtf.searchHint != 3 {
		t.Errorf("searchHint mutated by peek: got %d, want 3", s.vmtf.searchHint)
	}
}

func TestNextDecisionUsesSavedPhaseAndUpdatesHint(t *testing.T) {
	s := newTestSolver(t, 1)

	lit, err := s.nextDecision()
	if err != nil {
		t.Fatalf("nextDecision() error: %v", err)
	}
	// No phase saved yet, so the default is negative (spec §3).
	if lit != NegativeLiteral(1) {
		t.Errorf("nextDecision() = %v, want NegativeLiteral(1)", lit)
	}
	if s.vmtf.searchHint != 1 {
		t.Errorf("searchHint = %d, want 1", s.vmtf.searchHint)
	}
}

func TestNextDecisionFailsWhenEverythingAssigned(t *testing.T) {
	s := newTestSolver(t, 1)
	s.assign(PositiveLiteral(1), nil)

	if _, err := s.nextDecision(); err == nil {
		t.Errorf("nextDecision() with every variable assigned should fail")
	}
}

// TestBumpAndClearSeenVariablesUpdatesSearchHint guards against the VMTF
// invariant violation of spec §8 ("every unassigned variable has bumped <=
// search_hint.bumped"): analyze() bumps seen variables to the tail of the
// queue (giving them a fresh, high bumped timestamp) after backtrack has
// already unassigned everything above the jump level, so the search hint
// must move with them or nextDecision's head-ward walk can strand those
// variables forever.
func TestBumpAndClearSeenVariablesUpdatesSearchHint(t *testing.T) {
	s := newTestSolver(t, 3)
	// Simulate the post-backtrack, post-reassign state analyze() leaves
	// behind: the UIP (1) has just been reassigned, variables 2 and 3 were
	// resolved through and are unassigned again.
	s.assign(PositiveLiteral(1), nil)
	s.seenVars = []int{2, 3, 1}

	s.bumpAndClearSeenVariables(PositiveLiteral(1))

	hint := s.vmtf.searchHint
	if s.cells[hint] != Unknown {
		t.Fatalf("searchHint = %d is assigned; want an unassigned variable", hint)
	}
	for v := 1; v <= 3; v++ {
		if s.cells[v] == Unknown && s.vars[v].bumped > s.vars[hint].bumped {
			t.Errorf("unassigned variable %d has bumped=%d > searchHint(%d).bumped=%d",
				v, s.vars[v].bumped, hint, s.vars[hint].bumped)
		}
	}
}
