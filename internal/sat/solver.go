package sat

import (
	"fmt"
	"time"
)

// Status is the outcome of Solve, using the DIMACS-ish exit-code values of
// spec §6 so callers (in particular cmd/cadet) can use it directly as a
// process exit code.
type Status int

const (
	StatusUnknown Status = 0
	StatusSAT     Status = 10
	StatusUnsat   Status = 20
)

func (st Status) String() string {
	switch st {
	case StatusSAT:
		return "SATISFIABLE"
	case StatusUnsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// stats holds the global counters of spec §3 "Global counters".
type stats struct {
	Conflicts    int64
	Decisions    int64
	Propagations int64
	Restarts     int64
	Bumps        int64
	Reduces      int64
	Resolved     int64
}

// limits holds the threshold state of spec §3 "Limits".
type limits struct {
	restartConflicts int64
	reduceConflicts  int64
	reduceIncrement  int64
}

// Solver is a CDCL SAT solving engine (spec §2). It is single-threaded and
// not safe for concurrent use; the search loop is synchronous and never
// suspends except to poll an optional terminator between decisions.
type Solver struct {
	opts Options

	numVars int
	cells   []LBool     // indexed by variable
	vars    []varRecord // indexed by variable

	levels []levelRecord
	trail  []Literal

	nextBinary int
	nextLong   int

	watch watchLists
	arena arena
	vmtf  vmtfQueue

	conflict *Clause
	unsat    bool

	learnt        []Literal
	seenVars      []int
	touchedLevels []int
	minimizedVars []int

	fastGlue ema
	slowGlue ema
	avgJump  avg
	avgTrail avg

	fixedCount        int
	lastFixedAtReduce int
	recentlyResolved  int64

	stats  stats
	limits limits

	tracer     ProofTracer
	terminator func() bool

	startTime time.Time
	solved    bool
}

// NewSolver returns a solver with the given options, already sized for
// numVars variables (spec §6 "init"). opts is normally DefaultOptions(),
// tuned per caller.
func NewSolver(numVars int, opts Options) (*Solver, error) {
	if numVars < 0 {
		return nil, newError(InvalidState, "negative variable count %d", numVars)
	}

	s := &Solver{
		opts:    opts,
		numVars: numVars,

		cells: make([]LBool, numVars+1),
		vars:  make([]varRecord, numVars+1),

		levels: []levelRecord{{minTrailPos: maxInt}},

		watch: newWatchLists(2*numVars + 2),

		fastGlue: newEMA(opts.FastGlueAlpha),
		slowGlue: newEMA(opts.SlowGlueAlpha),
	}

	for v := 1; v <= numVars; v++ {
		s.vars[v].phase = Unknown
		s.vmtfEnqueueTail(v)
	}
	s.vmtf.searchHint = s.vmtf.tail

	s.limits.reduceIncrement = opts.ReduceIncrement
	s.limits.reduceConflicts = opts.ReduceInit
	s.arena.maxRedundant = 0

	return s, nil
}

const maxInt = int(^uint(0) >> 1)

// NumVars reports the fixed variable count this solver was initialized
// with.
func (s *Solver) NumVars() int {
	return s.numVars
}

// AddClause adds an original (irredundant) clause, given as signed DIMACS
// literals (spec §4.2, §6). Tautologies are silently dropped; duplicate
// literals are collapsed; a clause that reduces to a single literal is fed
// to the trail directly as a root-level unit instead of being stored in the
// arena (spec §3 "Unit clauses ... never stored as arena clauses"). Must be
// called at decision level 0.
func (s *Solver) AddClause(lits []int) error {
	if s.currentLevel() != 0 {
		return newError(InvalidState, "add_clause called at decision level %d", s.currentLevel())
	}

	packed := make([]Literal, 0, len(lits))
	for _, raw := range lits {
		if raw == 0 || raw > s.numVars || raw < -s.numVars {
			return newError(InvalidLiteral, "literal %d out of range for %d variables", raw, s.numVars)
		}
		packed = append(packed, LiteralFromInt(raw))
	}
	if s.unsat {
		return nil // already refuted; ConcludeUnsat has been emitted
	}

	normalized, tautology := normalizeClause(packed)
	if tautology {
		return nil
	}

	switch len(normalized) {
	case 0:
		s.unsat = true
		s.trace(func(t ProofTracer) { t.ConcludeUnsat() })
		return nil
	case 1:
		lit := normalized[0]
		switch s.value(lit) {
		case False:
			s.unsat = true
			s.trace(func(t ProofTracer) { t.ConcludeUnsat() })
		case Unknown:
			s.assign(lit, nil)
			if s.propagate() != nil {
				s.unsat = true
				s.trace(func(t ProofTracer) { t.ConcludeUnsat() })
			}
		}
		return nil
	default:
		s.newOriginalClause(normalized)
		return nil
	}
}

// normalizeClause removes duplicate literals in place and reports whether
// the clause is a tautology (contains both a literal and its negation), in
// which case the caller must drop it entirely (spec §4.2, §6).
func normalizeClause(lits []Literal) ([]Literal, bool) {
	seen := make(map[Literal]bool, len(lits))
	j := 0
	for _, l := range lits {
		if seen[l.Opposite()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		lits[j] = l
		j++
	}
	return lits[:j], false
}

// SetTerminator installs a polled stop hook, checked once per outer search
// iteration (spec §5). Passing nil removes it.
func (s *Solver) SetTerminator(fn func() bool) {
	s.terminator = fn
}

func (s *Solver) shouldStop() bool {
	if s.opts.MaxConflicts > 0 && s.stats.Conflicts >= s.opts.MaxConflicts {
		return true
	}
	if s.opts.Timeout > 0 && time.Since(s.startTime) >= s.opts.Timeout {
		return true
	}
	if s.terminator != nil && s.terminator() {
		return true
	}
	return false
}

// Solve runs the search driver of spec §4.10 to completion or until a stop
// condition fires.
func (s *Solver) Solve() (Status, error) {
	if s.unsat {
		return StatusUnsat, nil
	}
	s.startTime = time.Now()

	for {
		if s.unsat {
			return StatusUnsat, nil
		}

		if conflict := s.propagate(); conflict != nil {
			s.conflict = conflict
			s.analyze()
			if s.unsat {
				return StatusUnsat, nil
			}
			if s.shouldStop() {
				return StatusUnknown, nil
			}
			continue
		}

		if len(s.trail) == s.numVars {
			s.solved = true
			return StatusSAT, nil
		}

		if s.shouldStop() {
			return StatusUnknown, nil
		}

		if s.restarting() {
			s.restart()
			continue
		}
		if s.reducing() {
			s.reduce()
			continue
		}

		if err := s.decide(); err != nil {
			return StatusUnknown, err
		}
	}
}

// decide makes a new decision: advance the decision level, pick the next
// VMTF variable, and assign it its saved phase (spec §4.10 "decide()").
func (s *Solver) decide() error {
	lit, err := s.nextDecision()
	if err != nil {
		return err
	}
	s.levels = append(s.levels, levelRecord{decision: lit, minTrailPos: maxInt})
	s.stats.Decisions++
	s.assign(lit, nil)
	return nil
}

// Value reports the current value of a signed DIMACS literal, valid only
// once Solve has returned StatusSAT (spec §6 "value").
func (s *Solver) Value(lit int) (int, error) {
	if !s.solved {
		return 0, newError(InvalidState, "value called before a satisfying assignment was found")
	}
	if lit == 0 || lit > s.numVars || lit < -s.numVars {
		return 0, newError(InvalidLiteral, "literal %d out of range for %d variables", lit, s.numVars)
	}
	l := LiteralFromInt(lit)
	switch s.value(l) {
	case True:
		return 1, nil
	case False:
		return -1, nil
	default:
		return 0, newError(InvalidState, "variable %d unassigned in a satisfying assignment", l.VarID())
	}
}

func (s *Solver) String() string {
	return fmt.Sprintf("Solver[vars=%d conflicts=%d restarts=%d reduces=%d]",
		s.numVars, s.stats.Conflicts, s.stats.Restarts, s.stats.Reduces)
}
