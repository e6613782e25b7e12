package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigs enumerates every decider x restarter pairing so tests can
// check that the SAT/UNSAT answer is identical for every input across all
// nine combinations, regardless of which heuristics drove the search.
func allConfigs() []Options {
	deciders := []DeciderKind{DeciderOrdered, DeciderVSIDS, DeciderMiniSAT}
	restarters := []RestarterKind{RestartNone, RestartGeometric, RestartLuby}

	var out []Options
	for _, d := range deciders {
		for _, r := range restarters {
			opts := DefaultOptions
			opts.Decider = d
			opts.Restarter = r
			out = append(out, opts)
		}
	}
	return out
}

// build constructs a Solver with numVars variables and ingests clauses (one
// []int per clause, no trailing 0), returning the solver and whether
// FinalizeIngest reports the formula as not-yet-proven-unsat.
func build(t *testing.T, numVars int, opts Options, clauses [][]int) (*Solver, bool) {
	t.Helper()
	s, err := NewSolver(numVars, len(clauses), opts)
	require.NoError(t, err)
	for _, c := range clauses {
		require.NoError(t, s.AddClause(c))
	}
	return s, s.FinalizeIngest()
}

// assertSatisfies checks that every clause has at least one literal true
// under assignment.
func assertSatisfies(t *testing.T, clauses [][]int, assignment map[int]bool) {
	t.Helper()
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			v := lit
			want := true
			if v < 0 {
				v, want = -v, false
			}
			if assignment[v] == want {
				ok = true
				break
			}
		}
		assert.Truef(t, ok, "clause %v not satisfied by %v", c, assignment)
	}
}

// TestConflictingUnits: p cnf 1 2 / 1 0 / -1 0 is unsatisfiable at ingest.
func TestConflictingUnits(t *testing.T) {
	for _, opts := range allConfigs() {
		s, ok := build(t, 1, opts, [][]int{{1}, {-1}})
		require.False(t, ok)
		require.True(t, s.IsUnsat())
	}
}

// TestTrivialSAT covers scenario 2: p cnf 1 1 / 1 0 -> SAT with {1:true}.
func TestTrivialSAT(t *testing.T) {
	for _, opts := range allConfigs() {
		s, ok := build(t, 1, opts, [][]int{{1}})
		require.True(t, ok)
		require.Equal(t, True, s.Solve())
		assert.Equal(t, map[int]bool{1: true}, s.Assignment())
	}
}

// TestThreeClauseSAT covers scenario 3.
func TestThreeClauseSAT(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 3}, {-2, -3}}
	for _, opts := range allConfigs() {
		s, ok := build(t, 3, opts, clauses)
		require.True(t, ok)
		require.Equal(t, True, s.Solve())
		assertSatisfies(t, clauses, s.Assignment())
	}
}

// TestForcedUnsat covers scenario 4: forces both polarities on variable 2.
func TestForcedUnsat(t *testing.T) {
	clauses := [][]int{{1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
	for _, opts := range allConfigs() {
		s, ok := build(t, 3, opts, clauses)
		if ok {
			require.Equal(t, False, s.Solve())
		} else {
			require.True(t, s.IsUnsat())
		}
	}
}

// pigeonholeClauses encodes PHP(pigeons, holes): each pigeon in at least
// one hole, no hole holds two pigeons. Variable for pigeon p, hole h (both
// 0-based) is p*holes+h+1.
func pigeonholeClauses(pigeons, holes int) (numVars int, clauses [][]int) {
	v := func(p, h int) int { return p*holes + h + 1 }
	numVars = pigeons * holes

	for p := 0; p < pigeons; p++ {
		clause := make([]int, holes)
		for h := 0; h < holes; h++ {
			clause[h] = v(p, h)
		}
		clauses = append(clauses, clause)
	}
	for h := 0; h < holes; h++ {
		for p1 := 0; p1 < pigeons; p1++ {
			for p2 := p1 + 1; p2 < pigeons; p2++ {
				clauses = append(clauses, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	return numVars, clauses
}

// TestPigeonhole covers scenario 5: PHP(3,2) is UNSAT across every
// decider/restarter combination.
func TestPigeonhole(t *testing.T) {
	numVars, clauses := pigeonholeClauses(3, 2)
	require.Equal(t, 6, numVars)
	for _, opts := range allConfigs() {
		s, ok := build(t, numVars, opts, clauses)
		if ok {
			require.Equal(t, False, s.Solve())
		} else {
			require.True(t, s.IsUnsat())
		}
	}
}

// TestHornFormulaNoDecisions covers scenario 6: a satisfiable Horn formula
// resolved entirely by unit propagation, so the decision count is 0.
func TestHornFormulaNoDecisions(t *testing.T) {
	clauses := [][]int{{1}, {-1, 2}, {-2, 3}, {-3, 4}}
	for _, opts := range allConfigs() {
		s, ok := build(t, 4, opts, clauses)
		require.True(t, ok)
		require.Equal(t, True, s.Solve())
		assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 4: true}, s.Assignment())
		assert.Equal(t, 0, s.NumDecisions)
	}
}

// TestDeterminism checks that the same input, decider and restarter
// produce identical counts across repeated runs.
func TestDeterminism(t *testing.T) {
	clauses := [][]int{{1, 2, 3}, {-1, 2}, {-2, 3}, {-3, -1}, {1, -2, -3}}
	for _, opts := range allConfigs() {
		s1, ok1 := build(t, 3, opts, clauses)
		r1 := s1.Solve()

		s2, ok2 := build(t, 3, opts, clauses)
		r2 := s2.Solve()

		require.Equal(t, ok1, ok2)
		require.Equal(t, r1, r2)
		assert.Equal(t, s1.NumDecisions, s2.NumDecisions)
		assert.Equal(t, s1.NumConflicts, s2.NumConflicts)
		assert.Equal(t, s1.NumLearnedClauses, s2.NumLearnedClauses)

		if r1 == True {
			if diff := cmp.Diff(s1.Assignment(), s2.Assignment()); diff != "" {
				t.Errorf("repeated solve of the same instance produced different assignments (-run1 +run2):\n%s", diff)
			}
		}
	}
}
