package sat

// propagate runs unit propagation to a fixed point using the dual-queue
// BFS over the trail described in spec §4.6: binary clauses are drained
// eagerly (stopping at the first binary conflict), then long clauses are
// processed one trail position at a time using
// lazy two-watched-literal scanning with a cached blocking literal.
//
// Returns the conflicting clause, or nil at a propagation fixed point.
func (s *Solver) propagate() *Clause {
	before := s.nextBinary
	var conflict *Clause

	for conflict == nil && (s.nextBinary < len(s.trail) || s.nextLong < len(s.trail)) {
		for s.nextBinary < len(s.trail) {
			lit := s.trail[s.nextBinary]
			s.nextBinary++
			neg := lit.Opposite()
			for _, w := range s.watch.binaries[neg] {
				b := s.value(w.other)
				if b == False {
					conflict = w.clause
					break
				} else if b == Unknown {
					s.assign(w.other, w.clause)
				}
			}
			if conflict != nil {
				break
			}
		}
		if conflict != nil {
			break
		}
		if s.nextLong >= len(s.trail) {
			break
		}

		lit := s.trail[s.nextLong]
		s.nextLong++
		neg := lit.Opposite()
		ws := s.watch.longs[neg]

		i, j := 0, 0
		for i < len(ws) {
			w := ws[i]
			ws[j] = w
			i++
			j++

			if s.value(w.blit) == True {
				continue
			}

			c := w.clause
			lits := c.literals
			if lits[1] != neg {
				lits[0], lits[1] = lits[1], lits[0]
			}

			u := s.value(lits[0])
			if u == True {
				ws[j-1].blit = lits[0]
				continue
			}

			k := 2
			vv := False
			for k < len(lits) {
				vv = s.value(lits[k])
				if vv != False {
					break
				}
				k++
			}

			switch {
			case vv == True:
				ws[j-1].blit = lits[k]
			case vv == Unknown:
				lits[1], lits[k] = lits[k], lits[1]
				s.watch.longs[lits[1]] = append(s.watch.longs[lits[1]], longWatch{
					blit:   lits[0],
					clause: c,
					size:   int32(len(lits)),
				})
				j-- // drop this watcher from neg's list; it now watches lits[1]
			case u == Unknown:
				s.assign(lits[0], c)
			default: // u == False: both watches and the rest are falsified
				conflict = c
			}
			if conflict != nil {
				break
			}
		}
		for i < len(ws) {
			ws[j] = ws[i]
			i++
			j++
		}
		s.watch.longs[neg] = ws[:j]
	}

	s.stats.Propagations += int64(s.nextBinary) - before
	return conflict
}
