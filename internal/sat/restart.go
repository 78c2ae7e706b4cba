package sat

// restarting reports whether the solver should restart now, per spec §4.8:
// enough conflicts have passed since the last restart limit, and the fast
// glue EMA exceeds the slow one by the configured margin.
func (s *Solver) restarting() bool {
	if !s.opts.Restart {
		return false
	}
	if s.stats.Conflicts <= s.limits.restartConflicts {
		return false
	}
	limit := s.opts.RestartMargin * s.slowGlue.value
	return limit <= s.fastGlue.value
}

// reuseTrail computes the largest decision level whose decision variable
// was bumped more recently than the variable the VMTF queue would pick
// next, so that prefix of the trail can be kept across the restart (spec
// §4.8, §9 "reuse_trail").
func (s *Solver) reuseTrail() int {
	if !s.opts.ReuseTrail {
		return 0
	}
	hint := s.vmtfPeekNext()
	if hint == 0 {
		return 0
	}
	limit := s.vars[hint].bumped

	r := 0
	for r < s.currentLevel() {
		decisionVar := s.levels[r+1].decision.VarID()
		if s.vars[decisionVar].bumped <= limit {
			break
		}
		r++
	}
	return r
}

// restart backjumps to the reusable trail prefix and schedules the next
// restart limit (spec §4.8).
func (s *Solver) restart() {
	s.stats.Restarts++
	s.limits.restartConflicts = s.stats.Conflicts + s.opts.RestartInterval
	s.backtrack(s.reuseTrail())
}
