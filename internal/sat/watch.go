package sat

// binaryWatch is a watch-list entry for a binary clause: the *other*
// literal of the clause, cached directly so propagating a binary clause
// never needs to touch the arena (spec §3 "Watch entry", §4.3).
type binaryWatch struct {
	other  Literal
	clause *Clause
}

// longWatch is a watch-list entry for a clause of three or more literals:
// the cached blocking literal, the clause reference, and the clause's size
// at the time the watch was installed (spec §3 "Watch entry").
type longWatch struct {
	blit   Literal
	clause *Clause
	size   int32
}

// watchLists holds the two per-literal watch lists of spec §4.3, indexed by
// the packed literal index.
type watchLists struct {
	binaries [][]binaryWatch
	longs    [][]longWatch
}

func newWatchLists(numLiterals int) watchLists {
	return watchLists{
		binaries: make([][]binaryWatch, numLiterals),
		longs:    make([][]longWatch, numLiterals),
	}
}

// watchClause installs the watches for a freshly allocated clause, per the
// construction described in spec §4.3.
func (s *Solver) watchClause(c *Clause) {
	lits := c.literals
	if len(lits) == 2 {
		a, b := lits[0], lits[1]
		s.watch.binaries[a] = append(s.watch.binaries[a], binaryWatch{other: b, clause: c})
		s.watch.binaries[b] = append(s.watch.binaries[b], binaryWatch{other: a, clause: c})
		return
	}
	a, b := lits[0], lits[1]
	size := int32(len(lits))
	s.watch.longs[a] = append(s.watch.longs[a], longWatch{blit: b, clause: c, size: size})
	s.watch.longs[b] = append(s.watch.longs[b], longWatch{blit: a, clause: c, size: size})
}

// rebuildWatchLists discards every watch list and reinstalls watches for
// every surviving (non-garbage) clause. This is the only place watch lists
// are rebuilt from scratch; it runs once per reduce (spec §4.3, §4.9).
func (s *Solver) rebuildWatchLists() {
	n := len(s.watch.binaries)
	s.watch = newWatchLists(n)

	for _, c := range s.arena.irredundant {
		if !c.garbage {
			s.watchClause(c)
		}
	}
	for _, c := range s.arena.redundant {
		if !c.garbage {
			s.watchClause(c)
		}
	}
}
