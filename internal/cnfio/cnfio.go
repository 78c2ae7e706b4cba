// Package cnfio loads DIMACS CNF files into a sat.Solver. It adapts the
// external github.com/rhartert/dimacs streaming parser the way the teacher
// package's parsers package adapted it onto yass's incremental AddVariable
// API, but onto cadet's fixed-N init/add_clause API instead (spec §6).
package cnfio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rhartert/dimacs"

	"github.com/solverforge/cadet/internal/sat"
)

// Problem is the DIMACS header plus the clauses read from a CNF file,
// ready to be handed to sat.NewSolver.
type Problem struct {
	NumVars int
	Clauses [][]int
}

// LoadFile reads a (optionally gzip-compressed) DIMACS CNF file. Gzip is
// detected from the ".gz" suffix, matching the teacher's LoadDIMACS flag
// but inferred rather than passed explicitly, since cadet's CLI only takes
// one path argument.
func LoadFile(path string) (*Problem, error) {
	rc, err := openMaybeGzipped(path)
	if err != nil {
		return nil, fmt.Errorf("cnfio: opening %q: %w", path, err)
	}
	defer rc.Close()
	return Load(rc)
}

func openMaybeGzipped(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return gzipReadCloser{gz, f}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	file *os.File
}

func (g gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.file.Close(); err == nil {
		err = cerr
	}
	return err
}

// Load streams a DIMACS CNF document from r into a Problem.
func Load(r io.Reader) (*Problem, error) {
	b := &builder{numVars: -1}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("cnfio: %w", err)
	}
	if b.numVars < 0 {
		return nil, fmt.Errorf("cnfio: missing DIMACS problem line")
	}
	return &Problem{NumVars: b.numVars, Clauses: b.clauses}, nil
}

// NewSolver builds and populates a sat.Solver directly from a DIMACS
// document in one call. The end-to-end tests use it; cmd/cadet calls Load
// and sat.NewSolver itself so it can attach a proof tracer before the
// clauses are added.
func NewSolver(r io.Reader, opts sat.Options) (*sat.Solver, error) {
	problem, err := Load(r)
	if err != nil {
		return nil, err
	}
	s, err := sat.NewSolver(problem.NumVars, opts)
	if err != nil {
		return nil, err
	}
	for _, clause := range problem.Clauses {
		if err := s.AddClause(clause); err != nil {
			return nil, fmt.Errorf("cnfio: %w", err)
		}
	}
	return s, nil
}

// builder implements dimacs.Builder, collecting the header and clauses
// without touching a solver (so Load can be used for tooling other than
// solving, e.g. the model-checking test harness below).
type builder struct {
	numVars int
	clauses [][]int
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("unsupported DIMACS problem type %q", problem)
	}
	b.numVars = nVars
	b.clauses = make([][]int, 0, nClauses)
	return nil
}

func (b *builder) Clause(lits []int) error {
	clause := make([]int, len(lits))
	copy(clause, lits)
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil
}

// LoadModels reads a ".cnf.models" fixture file: one or more "clause" lines
// whose positive/negative literals directly encode a full variable
// assignment, used by the solver's end-to-end tests to check a witness
// model independently of the solver's own Value accessor.
func LoadModels(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cnfio: opening %q: %w", path, err)
	}
	defer f.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(f, b); err != nil {
		return nil, fmt.Errorf("cnfio: %w", err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("model files must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(lits []int) error {
	model := make([]bool, len(lits))
	for i, l := range lits {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
