package sat

import "sort"

// analyze performs 1-UIP conflict analysis on s.conflict (spec §4.7): it
// walks the implication graph backwards from the conflicting clause,
// collects every literal assigned below the current decision level, stops
// at the first unique implication point, minimizes the result
// by self-subsuming resolution, installs the learned clause (or the empty
// clause, if the conflict is already at the root level), and backjumps.
func (s *Solver) analyze() {
	if s.currentLevel() == 0 {
		s.trace(func(t ProofTracer) { t.ConcludeUnsat() })
		s.unsat = true
		s.conflict = nil
		return
	}

	reason := s.conflict
	open := 0
	uip := Literal(0)
	trailIdx := len(s.trail)

	s.learnt = s.learnt[:0]
	s.learnt = append(s.learnt, 0) // placeholder for the UIP literal

	for {
		s.resolveClause(reason)

		for _, x := range reason.literals {
			v := x.VarID()
			rec := &s.vars[v]
			if rec.seen || rec.level == 0 {
				continue
			}
			rec.seen = true
			s.seenVars = append(s.seenVars, v)

			lvl := &s.levels[rec.level]
			if lvl.analyzedCount == 0 {
				s.touchedLevels = append(s.touchedLevels, rec.level)
			}
			lvl.analyzedCount++
			if rec.trailPos < lvl.minTrailPos {
				lvl.minTrailPos = rec.trailPos
			}

			if rec.level < s.currentLevel() {
				s.learnt = append(s.learnt, x)
			} else {
				open++
			}
		}

		for {
			trailIdx--
			uip = s.trail[trailIdx]
			if s.vars[uip.VarID()].seen {
				break
			}
		}

		open--
		if open == 0 {
			break
		}
		reason = s.vars[uip.VarID()].reason
	}

	s.learnt[0] = uip.Opposite()
	glue := len(s.touchedLevels)

	if s.opts.Minimize {
		s.minimizeLearnt()
	}

	s.fastGlue.update(float64(glue))
	s.slowGlue.update(float64(glue))

	var driving *Clause
	jumpLevel := 0
	if len(s.learnt) > 1 {
		sort.Slice(s.learnt, func(i, j int) bool {
			return s.vars[s.learnt[i].VarID()].trailPos > s.vars[s.learnt[j].VarID()].trailPos
		})
		jumpLevel = s.vars[s.learnt[1].VarID()].level
	}

	s.avgJump.update(float64(jumpLevel))
	s.avgTrail.update(float64(len(s.trail)))

	s.backtrack(jumpLevel)
	if len(s.learnt) == 1 {
		s.assign(s.learnt[0], nil)
	} else {
		driving = s.newLearnedClause(s.learnt, glue)
		s.assign(s.learnt[0], driving)
	}

	s.bumpAndClearSeenVariables(uip)
	s.clearTouchedLevels()

	s.conflict = nil
	s.stats.Conflicts++
}

// resolveClause records that reason was used while walking the implication
// graph, for the tiebreak used by the reducer (spec §4.7 "Resolved-clause
// bookkeeping"). The stamp is a dedicated monotonic counter, not the
// conflict count: every learned clause, and every redundant clause above
// KeepSize and KeepGlue resolved through here, advances it, so reduce's
// "recently resolved" cutoff reflects actual resolution activity rather
// than how many conflicts have occurred overall.
func (s *Solver) resolveClause(c *Clause) {
	if !c.redundant {
		return
	}
	if c.Size() <= s.opts.KeepSize {
		return
	}
	if int(c.glue) <= s.opts.KeepGlue {
		return
	}
	s.stats.Resolved++
	c.resolvedStamp = s.stats.Resolved
}

// minimizeLearnt removes self-subsumed literals from s.learnt (spec §4.7
// "Minimization").
func (s *Solver) minimizeLearnt() {
	j := 1 // keep the UIP placeholder at index 0 untouched
	for i := 1; i < len(s.learnt); i++ {
		x := s.learnt[i]
		if s.minimizeLiteral(x.Opposite(), 0) {
			continue
		}
		s.learnt[j] = x
		j++
	}
	s.learnt = s.learnt[:j]

	for _, v := range s.minimizedVars {
		s.vars[v].removable = false
		s.vars[v].poison = false
	}
	s.minimizedVars = s.minimizedVars[:0]
}

// minimizeLiteral implements the depth-bounded self-subsuming resolution
// check of spec §4.7. lit is the literal that is currently true on the
// trail (the negation of a learnt-clause literal).
func (s *Solver) minimizeLiteral(lit Literal, depth int) bool {
	v := &s.vars[lit.VarID()]
	if v.level == 0 || v.removable || (depth > 0 && v.seen) {
		return true
	}
	if v.reason == nil || v.poison || v.level == s.currentLevel() {
		return false
	}
	if depth == 0 && s.levels[v.level].analyzedCount == 1 {
		return false
	}
	if depth > s.opts.MinimizeDepth {
		return false
	}

	ok := true
	for _, x := range v.reason.literals {
		if x == lit {
			continue
		}
		if !s.minimizeLiteral(x.Opposite(), depth+1) {
			ok = false
			break
		}
	}
	if ok {
		v.removable = true
	} else {
		v.poison = true
	}
	s.minimizedVars = append(s.minimizedVars, lit.VarID())
	return ok
}

// bumpAndClearSeenVariables sorts every variable seen during this conflict
// ascending by (bumped + trail_pos), move-to-fronts each in that order (so
// the most relevant ones end up nearest the decision queue's search point),
// and clears their seen flag (spec §4.7 "VMTF bumping"). Every bumped
// variable other than the UIP itself that comes out unassigned (i.e. every
// resolved-through variable at the current level, since backtrack already
// ran) becomes the new search hint, matching CaDiCaL's bump_variable
// (original_source/src/analyze.cpp): the hint must track the queue, or
// nextDecision's head-ward walk from a stale hint can never reach these
// freshly re-enqueued variables again.
func (s *Solver) bumpAndClearSeenVariables(uip Literal) {
	sort.SliceStable(s.seenVars, func(i, j int) bool {
		a, b := &s.vars[s.seenVars[i]], &s.vars[s.seenVars[j]]
		return a.bumped+int64(a.trailPos) < b.bumped+int64(b.trailPos)
	})
	uipVar := uip.VarID()
	for _, v := range s.seenVars {
		s.vars[v].seen = false
		s.vmtfMoveToFront(v)
		if v != uipVar && s.cells[v] == Unknown {
			s.vmtf.searchHint = v
		}
	}
	s.seenVars = s.seenVars[:0]
}

func (s *Solver) clearTouchedLevels() {
	for _, lvl := range s.touchedLevels {
		s.levels[lvl].reset()
	}
	s.touchedLevels = s.touchedLevels[:0]
}
