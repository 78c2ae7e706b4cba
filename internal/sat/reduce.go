package sat

import "github.com/rhartert/yagh"

// reducing reports whether enough conflicts have passed since the last
// clause-database reduction to trigger another one (spec §4.9, grounded on
// original_source/src/reduce.cpp's Solver::reducing).
func (s *Solver) reducing() bool {
	if !s.opts.Reduce {
		return false
	}
	return s.stats.Conflicts >= s.limits.reduceConflicts
}

// protectReasons marks every clause currently serving as a non-root reason
// so the garbage passes below leave it alone, and unprotectReasons undoes
// that marking once reduce is done. Both walk the trail rather than the
// arena, since only assigned variables can have a reason (spec §4.9 step 1).
func (s *Solver) protectReasons() {
	for _, lit := range s.trail {
		rec := s.varOf(lit)
		if rec.level != 0 && rec.reason != nil {
			rec.reason.reason = true
		}
	}
}

func (s *Solver) unprotectReasons() {
	for _, lit := range s.trail {
		rec := s.varOf(lit)
		if rec.level != 0 && rec.reason != nil {
			rec.reason.reason = false
		}
	}
}

// markSatisfiedAndFlushFalsified walks every non-garbage clause once and
// (a) marks it garbage if it holds a root-level true literal, or (b)
// shrinks away its root-level false literals otherwise (spec §4.9 step 2).
// It is skipped entirely when no new variable has been fixed at the root
// since the last reduce, mirroring original_source's fixed_limit guard.
func (s *Solver) markSatisfiedAndFlushFalsified() {
	if s.fixedCount <= s.lastFixedAtReduce {
		return
	}
	for _, c := range s.arena.irredundant {
		s.markOrFlushFixed(c)
	}
	for _, c := range s.arena.redundant {
		s.markOrFlushFixed(c)
	}
	s.lastFixedAtReduce = s.fixedCount
}

func (s *Solver) markOrFlushFixed(c *Clause) {
	if c.garbage {
		return
	}
	sawFalse := false
	for _, l := range c.literals {
		switch s.fixed(l) {
		case True:
			s.deleteClause(c)
			return
		case False:
			sawFalse = true
		}
	}
	if !sawFalse {
		return
	}
	// Binary clauses and reasons are never physically shrunk here: a
	// binary clause with a root-false literal would already have forced
	// its other literal through propagation, and a reason clause must
	// keep the exact literals that justified its assignment.
	if c.reason || c.isBinary() {
		return
	}
	s.flushFalsifiedLiterals(c)
}

// flushFalsifiedLiterals compacts out c's root-level false literals in
// place and reports the remaining literals to the proof tracer as a
// strengthening of c (spec §4.9 step 2, §4.11).
func (s *Solver) flushFalsifiedLiterals(c *Clause) {
	j := 0
	for _, l := range c.literals {
		if s.fixed(l) == False {
			continue
		}
		c.literals[j] = l
		j++
	}
	c.literals = c.literals[:j]
	s.trace(func(t ProofTracer) { t.Strengthen(c.id, cloneLiterals(c.literals)) })
}

// markUselessRedundantClausesGarbage selects the worse half of the
// reducible redundant clauses and marks them garbage (spec §4.9 step 3).
// Eligibility excludes reasons, clauses too small or too low-glue to ever
// be worth discarding, and clauses resolved through since the last reduce
// (recently useful). Usefulness among the rest is ranked by descending
// glue, then by ascending resolved stamp (staler first); this ranking is
// built as a yagh.IntMap priority order rather than a plain sort, the way
// the VMTF-adjacent ordering.go in the teacher package used yagh for its
// own priority queue (see DESIGN.md).
func (s *Solver) markUselessRedundantClausesGarbage() {
	var candidates []*Clause
	for _, c := range s.arena.redundant {
		if c.reason || c.garbage {
			continue
		}
		if c.Size() <= s.opts.KeepSize {
			continue
		}
		if int(c.glue) <= s.opts.KeepGlue {
			continue
		}
		if c.resolvedStamp > s.recentlyResolved {
			continue
		}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return
	}

	order := yagh.New[float64](len(candidates))
	for i, c := range candidates {
		order.Put(i, uselessnessKey(c))
	}

	target := len(candidates) / 2
	for i := 0; i < target; i++ {
		item, ok := order.Pop()
		if !ok {
			break
		}
		candidates[item.Elem].garbage = true
	}
}

// uselessnessKey packs (glue, resolvedStamp) into a single ascending key:
// higher glue sorts first (more useless), ties broken by the older
// (smaller) resolved stamp sorting first.
func uselessnessKey(c *Clause) float64 {
	return -float64(c.glue)*1e15 + float64(c.resolvedStamp)
}

// deleteGarbageClauses physically frees every garbage clause's literal
// storage and compacts both arenas in place (spec §4.9 step 4). Reasons
// are never collected even if somehow marked garbage, matching the
// protect/unprotect bracket around this call.
func (s *Solver) deleteGarbageClauses() {
	s.arena.irredundant = s.compactGarbage(s.arena.irredundant, &s.arena.numIrredundant)
	s.arena.redundant = s.compactGarbage(s.arena.redundant, &s.arena.numRedundant)
}

// compactGarbage emits the delete proof event for every garbage clause at
// the point of physical collection, matching original_source/src/reduce.cpp's
// delete_garbage_clauses -> delete_clause -> proof->trace_delete_clause
// flow: the event is tied to physical collection, not to however the
// clause was marked garbage (markOrFlushFixed's root-satisfied clauses and
// markUselessRedundantClausesGarbage's worse-half selection both land
// here). The event must fire before physicallyFree clears c.literals.
func (s *Solver) compactGarbage(clauses []*Clause, count *int) []*Clause {
	j := 0
	for _, c := range clauses {
		if c.reason || !c.garbage {
			clauses[j] = c
			j++
			continue
		}
		s.trace(func(t ProofTracer) { t.Delete(c.id, cloneLiterals(c.literals)) })
		c.physicallyFree()
		*count--
	}
	return clauses[:j]
}

// reduce runs one full clause-database reduction cycle (spec §4.9): protect
// currently used reasons, drop satisfied clauses and shrink ones carrying
// stale false literals, pick the worse half of the rest of the redundant
// clauses for collection, physically collect and rebuild watch lists, then
// grow the reduce increment additively and schedule the next reduction.
func (s *Solver) reduce() {
	s.stats.Reduces++
	s.protectReasons()
	s.markSatisfiedAndFlushFalsified()
	s.markUselessRedundantClausesGarbage()
	s.deleteGarbageClauses()
	s.rebuildWatchLists()
	s.unprotectReasons()

	s.limits.reduceIncrement += s.opts.ReduceIncrement
	s.limits.reduceConflicts = s.stats.Conflicts + s.limits.reduceIncrement
	s.recentlyResolved = s.stats.Resolved
}
