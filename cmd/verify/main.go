// Command verify is a standalone assignment checker: it reads an input CNF
// and an assignment file, and for each clause checks that at least one
// literal is satisfied by the assignment, reporting valid iff every clause
// is satisfied. Uses github.com/rhartert/dimacs to parse the CNF rather
// than splitting lines by hand.
package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/rhartert/dimacs"

	"github.com/watchedliteral/cdcl/internal/resultio"
)

type cliArgs struct {
	InputPath      string `arg:"positional,required"`
	AssignmentPath string `arg:"positional,required"`
}

func (cliArgs) Description() string {
	return "verify that an assignment file satisfies a DIMACS CNF instance"
}

func main() {
	var args cliArgs
	arg.MustParse(&args)

	assignment, err := resultio.ReadAssignment(args.AssignmentPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	valid, badClause, err := checkValidity(args.InputPath, assignment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if valid {
		fmt.Println("YES!! The assignment is valid.")
		return
	}
	fmt.Printf("NO!! The assignment is not valid (clause %v is unsatisfied).\n", badClause)
	os.Exit(1)
}

// checkValidity reads the CNF at inputPath and reports whether every
// clause has at least one literal true under assignment.
func checkValidity(inputPath string, assignment map[int]bool) (valid bool, badClause []int, err error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return false, nil, fmt.Errorf("could not open %q: %w", inputPath, err)
	}
	defer f.Close()

	valid = true
	b := &verifyBuilder{assignment: assignment}
	if err := dimacs.ReadBuilder(f, b); err != nil {
		return false, nil, fmt.Errorf("could not parse %q: %w", inputPath, err)
	}
	return b.valid, b.badClause, nil
}

type verifyBuilder struct {
	assignment map[int]bool
	valid      bool
	badClause  []int
}

func (b *verifyBuilder) Problem(string, int, int) error {
	b.valid = true
	return nil
}

func (b *verifyBuilder) Comment(string) error { return nil }

func (b *verifyBuilder) Clause(tmpClause []int) error {
	if !b.valid {
		return nil // already found a violated clause, nothing more to check
	}
	satisfied := false
	for _, lit := range tmpClause {
		var v int
		var want bool
		if lit < 0 {
			v, want = -lit, false
		} else {
			v, want = lit, true
		}
		if b.assignment[v] == want {
			satisfied = true
			break
		}
	}
	if !satisfied {
		b.valid = false
		b.badClause = append([]int(nil), tmpClause...)
	}
	return nil
}
