package sat

import "time"

// Options configures solver behavior, following the teacher package's
// Options/DefaultOptions pattern. Numeric defaults are CaDiCaL's (spec §9,
// original_source/src/options.hpp) unless noted otherwise.
type Options struct {
	// Restart enables the Luby-free glue-based restart scheme of spec §4.8.
	Restart bool
	// RestartMargin is how far the fast glue EMA must exceed the slow one,
	// as a multiplier, before a restart is triggered (CaDiCaL restartmargin
	// default 1.1).
	RestartMargin float64
	// RestartInterval is the minimum number of conflicts between restarts
	// (CaDiCaL restartint default 6, generalized here to int64 since the
	// solver tracks conflicts as int64).
	RestartInterval int64
	// ReuseTrail enables keeping the still-relevant trail prefix across a
	// restart instead of backtracking to level 0 (spec §4.8).
	ReuseTrail bool

	// Minimize enables self-subsuming-resolution minimization of learned
	// clauses (spec §4.7).
	Minimize bool
	// MinimizeDepth caps the recursion depth of minimizeLiteral (CaDiCaL
	// minimizedepth default 1000).
	MinimizeDepth int
	// KeepSize is the clause-size floor at or below which a redundant clause
	// is never discarded by reduce (CaDiCaL keepsize default 3).
	KeepSize int
	// KeepGlue is the glue floor at or below which a redundant clause is
	// never discarded by reduce (CaDiCaL keepglue default 3).
	KeepGlue int

	// Reduce enables periodic clause-database reduction (spec §4.9).
	Reduce bool
	// ReduceInit is the conflict count of the first reduce (CaDiCaL
	// reduceinit default 2000).
	ReduceInit int64
	// ReduceIncrement is added to the reduce increment after every reduce,
	// so the interval between reductions grows over the run (CaDiCaL
	// reduceinc default 300).
	ReduceIncrement int64

	// FastGlueAlpha and SlowGlueAlpha are the EMA smoothing factors driving
	// the restart decision (CaDiCaL fastglue/slowglue: 2^-5 and 2^-14).
	FastGlueAlpha float64
	SlowGlueAlpha float64

	// MaxConflicts stops the search once this many conflicts have occurred,
	// regardless of outcome; zero means unbounded (spec §4.10 "Stopping
	// conditions").
	MaxConflicts int64
	// Timeout stops the search once this much wall-clock time has elapsed;
	// zero means unbounded.
	Timeout time.Duration
}

// DefaultOptions returns the option set used when none is supplied,
// matching CaDiCaL's documented defaults (spec §9).
func DefaultOptions() Options {
	return Options{
		Restart:         true,
		RestartMargin:   1.1,
		RestartInterval: 6,
		ReuseTrail:      true,

		Minimize:      true,
		MinimizeDepth: 1000,
		KeepSize:      3,
		KeepGlue:      3,

		Reduce:          true,
		ReduceInit:      2000,
		ReduceIncrement: 300,

		FastGlueAlpha: 1.0 / 32,   // 2^-5
		SlowGlueAlpha: 1.0 / 16384, // 2^-14

		MaxConflicts: 0,
		Timeout:      0,
	}
}
