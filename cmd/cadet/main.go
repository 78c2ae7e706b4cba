// Command cadet reads a DIMACS CNF file and reports its satisfiability,
// mirroring the CLI wrapper of spec §6 (exit codes 10/20/0, nonzero on
// parse/IO error).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/solverforge/cadet/internal/cnfio"
	"github.com/solverforge/cadet/internal/prooftrace"
	"github.com/solverforge/cadet/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagProof = flag.String(
	"proof",
	"",
	"write a human-readable proof trace to this path",
)

var flagMaxConflicts = flag.Int64(
	"max-conflicts",
	0,
	"stop after this many conflicts and report UNKNOWN (0 = unbounded)",
)

var flagTimeout = flag.Duration(
	"timeout",
	0,
	"stop after this much wall-clock time and report UNKNOWN (0 = unbounded)",
)

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	proofFile    string
	maxConflicts int64
	timeout      time.Duration
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		proofFile:    *flagProof,
		maxConflicts: *flagMaxConflicts,
		timeout:      *flagTimeout,
	}, nil
}

func run(cfg *config) (sat.Status, error) {
	f, err := os.Open(cfg.instanceFile)
	if err != nil {
		return sat.StatusUnknown, fmt.Errorf("could not open instance: %w", err)
	}
	defer f.Close()

	opts := sat.DefaultOptions()
	opts.MaxConflicts = cfg.maxConflicts
	opts.Timeout = cfg.timeout

	problem, err := cnfio.Load(f)
	if err != nil {
		return sat.StatusUnknown, fmt.Errorf("could not parse instance: %w", err)
	}

	s, err := sat.NewSolver(problem.NumVars, opts)
	if err != nil {
		return sat.StatusUnknown, fmt.Errorf("could not parse instance: %w", err)
	}

	var logger *prooftrace.Logger
	if cfg.proofFile != "" {
		pf, err := os.Create(cfg.proofFile)
		if err != nil {
			return sat.StatusUnknown, fmt.Errorf("could not create proof file: %w", err)
		}
		defer pf.Close()
		logger = prooftrace.NewLogger(pf)
		s.ConnectProof(logger)
		defer logger.Close()
	}

	// The proof sink must be attached before clauses are added so add_input
	// events (spec §5 "input adds" ordered first) are actually traced.
	for _, clause := range problem.Clauses {
		if err := s.AddClause(clause); err != nil {
			return sat.StatusUnknown, fmt.Errorf("could not parse instance: %w", err)
		}
	}

	fmt.Printf("c variables:  %d\n", s.NumVars())

	t := time.Now()
	status, err := s.Solve()
	elapsed := time.Since(t)
	if err != nil {
		return sat.StatusUnknown, err
	}

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c status:     %s\n", status)

	return status, nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
	}

	status, err := run(cfg)

	if cfg.cpuProfile {
		pprof.StopCPUProfile()
	}
	if err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}

	os.Exit(int(status))
}
