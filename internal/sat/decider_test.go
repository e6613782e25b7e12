package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver(t *testing.T, numVars int, kind DeciderKind) *Solver {
	t.Helper()
	opts := DefaultOptions
	opts.Decider = kind
	s, err := NewSolver(numVars, 0, opts)
	require.NoError(t, err)
	return s
}

func TestOrderedDeciderScansLowestUnassignedFirst(t *testing.T) {
	s := newTestSolver(t, 3, DeciderOrdered)

	lit, ok := s.decider.NextDecision(s)
	require.True(t, ok)
	assert.Equal(t, s.positiveLiteral(1), lit)

	// Assign variable 1, then variable 2 should be next.
	s.tr.beginDecisionLevel()
	s.tr.push(1, true, noAntecedent)
	lit, ok = s.decider.NextDecision(s)
	require.True(t, ok)
	assert.Equal(t, s.positiveLiteral(2), lit)
}

func TestVSIDSDecidesHighestBumpedLiteral(t *testing.T) {
	s := newTestSolver(t, 3, DeciderVSIDS)

	s.decider.BumpLiteral(s.negativeLiteral(2))
	s.decider.BumpLiteral(s.negativeLiteral(2))
	s.decider.BumpLiteral(s.positiveLiteral(3))

	lit, ok := s.decider.NextDecision(s)
	require.True(t, ok)
	assert.Equal(t, s.negativeLiteral(2), lit)
}

func TestVSIDSRemoveExcludesAssignedVariable(t *testing.T) {
	s := newTestSolver(t, 2, DeciderVSIDS)

	s.decider.BumpLiteral(s.positiveLiteral(1))
	s.decider.BumpLiteral(s.negativeLiteral(1))
	s.decider.Remove(s, 1)

	lit, ok := s.decider.NextDecision(s)
	require.True(t, ok)
	assert.Equal(t, 2, s.varOf(lit))
}

func TestMiniSATUsesSavedPhase(t *testing.T) {
	s := newTestSolver(t, 1, DeciderMiniSAT)

	s.decider.BumpVariable(1)
	s.decider.SetPhase(1, false)

	lit, ok := s.decider.NextDecision(s)
	require.True(t, ok)
	assert.Equal(t, s.negativeLiteral(1), lit)
}

func TestDecayGrowsIncrementFromOptions(t *testing.T) {
	s := newTestSolver(t, 1, DeciderVSIDS)
	s.decider.Decay()
	assert.Equal(t, 1+DefaultOptions.VSIDSBumpGrowth, s.decider.litIncr)
}
