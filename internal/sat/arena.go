package sat

import (
	"math/bits"
	"sync"
)

// Clause body allocation is pooled by capacity bucket so that learning and
// collecting clauses in the hot conflict loop doesn't thrash the garbage
// collector. This generalizes the teacher's (yass) sync.Pool-of-literal-slices
// idea in clause_allocpool.go from a single fixed bucket set to one indexed
// by bits.Len, and drops the yass build-tag toggle between a pooled and a
// non-pooled allocator (see DESIGN.md) in favor of always pooling.
const (
	arenaPoolCount  = 5
	arenaMinBucket  = 1 << 2 // smallest pooled capacity: 4 literals
	arenaLastBucket = arenaMinBucket << (arenaPoolCount - 1)
)

var literalPools [arenaPoolCount]sync.Pool

func init() {
	for i := 0; i < arenaPoolCount; i++ {
		capa := arenaMinBucket << i
		literalPools[i].New = func() any {
			s := make([]Literal, 0, capa)
			return &s
		}
	}
}

func bucketFor(capa int) int {
	if capa <= arenaMinBucket {
		return 0
	}
	if capa >= arenaLastBucket {
		return arenaPoolCount - 1
	}
	b := bits.Len(uint(capa-1)) - bits.Len(uint(arenaMinBucket-1))
	if b < 0 {
		b = 0
	}
	return b
}

// allocLiterals returns an empty slice with at least capa of capacity,
// reused from a size-bucketed pool when possible.
func allocLiterals(capa int) []Literal {
	ref := literalPools[bucketFor(capa)].Get().(*[]Literal)
	s := (*ref)[:0]
	if cap(s) < capa {
		s = make([]Literal, 0, capa)
	}
	*ref = nil
	return s
}

// freeLiterals returns s's backing array to its bucket pool.
func freeLiterals(s []Literal) {
	if s == nil {
		return
	}
	s = s[:0]
	ref := &s
	literalPools[bucketFor(cap(s))].Put(ref)
}

// arena owns every clause body in the solver (spec §3 "Arena clauses"). It
// is embedded in Solver rather than kept fully opaque because clause
// creation also installs watches and emits proof events, both of which
// live on Solver, mirroring the teacher's NewClause(s *Solver, ...) pattern.
type arena struct {
	nextID      ClauseID
	irredundant []*Clause
	redundant   []*Clause

	numIrredundant int
	numRedundant   int
	maxRedundant   int
}

func (a *arena) allocClause(lits []Literal, redundant bool) *Clause {
	c := &Clause{
		id:        a.nextID,
		literals:  allocLiterals(len(lits)),
		redundant: redundant,
	}
	a.nextID++
	c.literals = append(c.literals, lits...)
	return c
}

// newOriginalClause allocates an irredundant (input) clause with at least
// two literals, installs its watches, and emits the add_input proof event.
// Tautology checks, duplicate-literal removal and unit extraction must
// already have happened in the caller (spec §4.2).
func (s *Solver) newOriginalClause(lits []Literal) *Clause {
	c := s.arena.allocClause(lits, false)
	s.arena.irredundant = append(s.arena.irredundant, c)
	s.arena.numIrredundant++
	s.watchClause(c)
	s.trace(func(t ProofTracer) { t.AddInput(c.id, cloneLiterals(c.literals)) })
	return c
}

// newLearnedClause allocates a redundant (learned) clause. lits[0] and
// lits[1] must already be the intended watches (spec §4.7 "Install learnt
// clause"). Emits the add_derived proof event.
func (s *Solver) newLearnedClause(lits []Literal, glue int) *Clause {
	c := s.arena.allocClause(lits, true)
	c.glue = int32(glue)
	s.stats.Resolved++
	c.resolvedStamp = s.stats.Resolved
	s.arena.redundant = append(s.arena.redundant, c)
	s.arena.numRedundant++
	if s.arena.numRedundant > s.arena.maxRedundant {
		s.arena.maxRedundant = s.arena.numRedundant
	}
	s.watchClause(c)
	s.trace(func(t ProofTracer) { t.AddDerived(c.id, cloneLiterals(c.literals)) })
	return c
}

// deleteClause marks c garbage. Physical deallocation, and the delete proof
// event that goes with it, are deferred to reduce's compactGarbage (spec
// §4.2, §4.9 step 4): the event reports physical collection, not marking,
// so a clause marked garbage here and one marked garbage directly by
// markUselessRedundantClausesGarbage are traced identically and exactly
// once.
func (s *Solver) deleteClause(c *Clause) {
	c.garbage = true
}

// physicallyFree releases a garbage clause's storage. It does not touch the
// watch lists, which may still (stale-ly) reference the clause; it is only
// called from reduce, which rebuilds watch lists from scratch afterwards.
func (c *Clause) physicallyFree() {
	freeLiterals(c.literals)
	c.literals = nil
}

func cloneLiterals(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	copy(out, lits)
	return out
}
