// Package parsers feeds DIMACS CNF files into the solver core, translating
// problem and clause lines into NewSolver/AddClause/FinalizeIngest calls.
package parsers

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/rhartert/dimacs"

	"github.com/watchedliteral/cdcl/internal/sat"
)

func reader(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
	}
	return rc, nil
}

// LoadDIMACS parses a DIMACS CNF file and ingests it into a freshly
// constructed Solver: the problem line sizes the solver (its arrays are
// fixed at construction), each clause line calls AddClause, and
// FinalizeIngest runs once after the last clause. It returns the
// constructed Solver and whatever FinalizeIngest reports (false means the
// formula is already proven UNSAT).
func LoadDIMACS(filename string, gzipped bool, opts sat.Options) (*sat.Solver, bool, error) {
	r, err := reader(filename, gzipped)
	if err != nil {
		return nil, false, fmt.Errorf("error reading file %q: %s", filename, err)
	}
	defer r.Close()

	b := &builder{opts: opts}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, false, err
	}
	if b.solver == nil {
		return nil, false, fmt.Errorf("%q has no problem line", filename)
	}
	if b.err != nil {
		return nil, false, b.err
	}

	ok := b.solver.FinalizeIngest()
	return b.solver, ok, nil
}

// builder implements dimacs.Builder, translating DIMACS problem/clause
// lines into calls against a lazily-constructed *sat.Solver (construction
// is deferred to the Problem callback since it needs the variable count up
// front).
type builder struct {
	opts   sat.Options
	solver *sat.Solver
	err    error
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("not a CNF problem: %q", problem)
	}
	s, err := sat.NewSolver(nVars, nClauses, b.opts)
	if err != nil {
		return fmt.Errorf("could not configure solver: %w", err)
	}
	b.solver = s
	return nil
}

func (b *builder) Clause(tmpClause []int) error {
	if b.solver == nil {
		return fmt.Errorf("clause line before problem line")
	}
	if b.err != nil {
		return nil // already broken, parser keeps scanning; first error wins
	}
	if err := b.solver.AddClause(tmpClause); err != nil {
		b.err = fmt.Errorf("malformed clause %v: %w", tmpClause, err)
	}
	return nil
}

func (b *builder) Comment(_ string) error {
	return nil // ignore comments
}
