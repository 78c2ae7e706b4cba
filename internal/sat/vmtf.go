package sat

// vmtfQueue is the doubly-linked, bump-timestamp-ordered decision queue of
// spec §3/§4.5. Variables are linked by index through varRecord.prev/next;
// 0 means "no variable" since variable indices are 1-based.
type vmtfQueue struct {
	head, tail int
	searchHint int
	bumpStamp  int64
}

// errNoDecision is returned by nextDecision when every variable is assigned,
// which implies the formula is satisfied (spec §4.5).
var errNoDecision = newError(InvalidState, "no unassigned variable left")

func (s *Solver) vmtfDequeue(v int) {
	rec := &s.vars[v]
	if rec.prev != 0 {
		s.vars[rec.prev].next = rec.next
	} else {
		s.vmtf.head = rec.next
	}
	if rec.next != 0 {
		s.vars[rec.next].prev = rec.prev
	} else {
		s.vmtf.tail = rec.prev
	}
	rec.prev, rec.next = 0, 0
}

func (s *Solver) vmtfEnqueueTail(v int) {
	rec := &s.vars[v]
	s.vmtf.bumpStamp++
	rec.bumped = s.vmtf.bumpStamp

	rec.prev = s.vmtf.tail
	rec.next = 0
	if s.vmtf.tail != 0 {
		s.vars[s.vmtf.tail].next = v
	} else {
		s.vmtf.head = v
	}
	s.vmtf.tail = v
}

// vmtfMoveToFront bumps v's timestamp and moves it to the back of the
// queue (the "front" of the search order, since nextDecision walks from
// the tail towards the head via prev).
func (s *Solver) vmtfMoveToFront(v int) {
	s.vmtfDequeue(v)
	s.vmtfEnqueueTail(v)
}

// vmtfConsiderHint keeps the search hint invariant intact when v is
// unassigned by backtrack: every unassigned variable must have bumped <=
// search_hint.bumped.
func (s *Solver) vmtfConsiderHint(v int) {
	if s.vmtf.searchHint == 0 {
		s.vmtf.searchHint = v
		return
	}
	if s.vars[v].bumped > s.vars[s.vmtf.searchHint].bumped {
		s.vmtf.searchHint = v
	}
}

// nextDecision walks from search_hint via prev until an unassigned variable
// is found, stores it as the new hint, and returns the corresponding
// decision literal (using the saved phase). Returns errNoDecision if every
// variable is assigned.
func (s *Solver) nextDecision() (Literal, error) {
	v := s.vmtfPeekNext()
	if v == 0 {
		return 0, errNoDecision
	}
	s.vmtf.searchHint = v

	phase := s.vars[v].phase
	if phase == Unknown {
		phase = False // initial saved phase is negative (spec §3)
	}
	if phase == True {
		return PositiveLiteral(v), nil
	}
	return NegativeLiteral(v), nil
}

// vmtfPeekNext returns the variable nextDecision would currently pick,
// without consuming or mutating the search hint. Used by reuseTrail to
// compare decision levels against the not-yet-made next decision (spec
// §4.8).
func (s *Solver) vmtfPeekNext() int {
	v := s.vmtf.searchHint
	for v != 0 && s.cells[v] != Unknown {
		v = s.vars[v].prev
	}
	return v
}
