package sat

import "testing"

func mustAddClause(t *testing.T, s *Solver, lits ...int) {
	t.Helper()
	if err := s.AddClause(lits); err != nil {
		t.Fatalf("AddClause(%v) error: %v", lits, err)
	}
}

// spec §8 end-to-end scenario 1.
func TestSolveSatTwoVar(t *testing.T) {
	s := newTestSolver(t, 2)
	mustAddClause(t, s, 1, 2)
	mustAddClause(t, s, -1, 2)
	mustAddClause(t, s, -1, -2)

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusSAT {
		t.Fatalf("Solve() = %v, want SAT", status)
	}

	v2, err := s.Value(2)
	if err != nil {
		t.Fatalf("Value(2) error: %v", err)
	}
	if v2 != 1 {
		t.Errorf("Value(2) = %d, want +1", v2)
	}
}

// spec §8 end-to-end scenario 2.
func TestSolveUnsatTwoVar(t *testing.T) {
	s := newTestSolver(t, 2)
	mustAddClause(t, s, 1, 2)
	mustAddClause(t, s, -1, 2)
	mustAddClause(t, s, 1, -2)
	mustAddClause(t, s, -1, -2)

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("Solve() = %v, want UNSAT", status)
	}
}

// spec §8 end-to-end scenario 3: UNSAT must be detected at AddClause time,
// before Solve is ever called.
func TestAddClauseClashingUnitsDetectedAtParse(t *testing.T) {
	s := newTestSolver(t, 1)
	mustAddClause(t, s, 1)
	if s.unsat {
		t.Fatalf("solver reported unsat after a single unit clause")
	}
	mustAddClause(t, s, -1)
	if !s.unsat {
		t.Fatalf("solver did not detect clashing root units at add_clause time")
	}

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusUnsat {
		t.Errorf("Solve() = %v, want UNSAT", status)
	}
}

// spec §8 end-to-end scenario 4: pigeonhole PHP(3->2).
func TestSolvePigeonhole32Unsat(t *testing.T) {
	s := newTestSolver(t, 6)
	clauses := [][]int{
		{1, 2}, {3, 4}, {5, 6},
		{-1, -3}, {-1, -5}, {-3, -5},
		{-2, -4}, {-2, -6}, {-4, -6},
	}
	for _, c := range clauses {
		mustAddClause(t, s, c...)
	}

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("Solve() = %v, want UNSAT", status)
	}
}

// spec §8 end-to-end scenario 5: xor chain, unsat via pure binary propagation.
func TestSolveXorChainUnsatPureBinary(t *testing.T) {
	s := newTestSolver(t, 3)
	clauses := [][]int{
		{-1, 2}, {1, -2},
		{-2, 3}, {2, -3},
		{3, 1}, {-3, -1},
	}
	for _, c := range clauses {
		mustAddClause(t, s, c...)
	}

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusUnsat {
		t.Fatalf("Solve() = %v, want UNSAT", status)
	}
	// Every input clause is binary, so the long-clause watch lists should
	// never hold anything: the whole refutation goes through binaries[*].
	for _, lws := range s.watch.longs {
		if len(lws) != 0 {
			t.Errorf("long watch list non-empty for an all-binary xor chain instance")
			break
		}
	}
}

func TestAddClauseDropsTautology(t *testing.T) {
	s := newTestSolver(t, 2)
	mustAddClause(t, s, 1, -1, 2)
	if len(s.arena.irredundant) != 0 {
		t.Errorf("tautological clause was stored in the arena: %d clauses", len(s.arena.irredundant))
	}
}

func TestAddClauseCollapsesDuplicateLiterals(t *testing.T) {
	s := newTestSolver(t, 2)
	mustAddClause(t, s, 1, 2, 1, 2)
	if len(s.arena.irredundant) != 1 {
		t.Fatalf("len(arena.irredundant) = %d, want 1", len(s.arena.irredundant))
	}
	if got := s.arena.irredundant[0].Size(); got != 2 {
		t.Errorf("clause size after dedup = %d, want 2", got)
	}
}

func TestEmptyFormulaIsSat(t *testing.T) {
	s := newTestSolver(t, 3)
	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusSAT {
		t.Errorf("Solve() on empty formula = %v, want SAT", status)
	}
}

func TestAddClauseEmptyClauseIsUnsat(t *testing.T) {
	s := newTestSolver(t, 1)
	mustAddClause(t, s)
	if !s.unsat {
		t.Fatalf("empty clause did not mark the solver unsat")
	}
}

func TestValueBeforeSatIsInvalidState(t *testing.T) {
	s := newTestSolver(t, 1)
	if _, err := s.Value(1); err == nil {
		t.Fatalf("Value() before Solve() should fail")
	}
}

func TestMaxConflictsStopsWithUnknown(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxConflicts = 1
	opts.Restart = false
	s, err := NewSolver(6, opts)
	if err != nil {
		t.Fatalf("NewSolver error: %v", err)
	}
	clauses := [][]int{
		{1, 2}, {3, 4}, {5, 6},
		{-1, -3}, {-1, -5}, {-3, -5},
		{-2, -4}, {-2, -6}, {-4, -6},
	}
	for _, c := range clauses {
		mustAddClause(t, s, c...)
	}

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusUnknown {
		t.Errorf("Solve() with MaxConflicts=1 on PHP(3->2) = %v, want UNKNOWN", status)
	}
}

func TestTerminatorStopsSearch(t *testing.T) {
	s := newTestSolver(t, 6)
	clauses := [][]int{
		{1, 2}, {3, 4}, {5, 6},
		{-1, -3}, {-1, -5}, {-3, -5},
		{-2, -4}, {-2, -6}, {-4, -6},
	}
	for _, c := range clauses {
		mustAddClause(t, s, c...)
	}
	s.SetTerminator(func() bool { return true })

	status, err := s.Solve()
	if err != nil {
		t.Fatalf("Solve() error: %v", err)
	}
	if status != StatusUnknown {
		t.Errorf("Solve() with an always-stop terminator = %v, want UNKNOWN", status)
	}
}
