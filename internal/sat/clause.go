package sat

import (
	"strconv"
	"strings"
)

// ClauseID identifies a clause by its index in the solver's clause
// database.
type ClauseID int

// noAntecedent marks an AssignmentRecord with no antecedent clause:
// decisions and unit-derived level-0 facts.
const noAntecedent ClauseID = -1

// Clause is an ordered, duplicate-free sequence of literals, stored in the
// order they were first seen: stored order is load-bearing for BCP's
// replacement-watch scan and must never be permuted in place. Only clauses
// of length >= 2 ever reach the database; unit clauses are applied directly
// as level-0 facts during ingest and never stored.
type Clause struct {
	literals []Literal
	learnt   bool

	// watchA and watchB are the two literals of this clause currently
	// watched. They are literal values, not positions into literals, so
	// that changing which literal is watched never requires reordering the
	// stored literal sequence.
	watchA, watchB Literal
}

// newClause allocates a Clause from literals already known to be distinct,
// unassigned-or-true-free of trivial satisfaction, and of length >= 2. The
// ingest-time simplification (dedup, trivial-true detection, unit
// shortcut) lives in Solver.AddClause; the resolution-time construction
// (conflict analysis) builds its literal slice directly since it has
// already deduplicated via the solver's assigned set. Both paths funnel
// through here so the initial watch pair is chosen in exactly one place;
// each caller then registers that pair in the watch index.
//
// Clauses are never removed, so there is no slice to return to a pool
// later: a pool with no free side degenerates into a plain make, so this
// copies directly instead of carrying that machinery.
func newClause(literals []Literal, learnt bool) *Clause {
	c := &Clause{
		literals: append([]Literal(nil), literals...),
		learnt:   learnt,
	}
	c.watchA = c.literals[0]
	c.watchB = c.literals[1]
	return c
}

// otherWatch returns whichever of the clause's two watched literals is not
// falsified, given that falsified is known to be one of them.
func (c *Clause) otherWatch(falsified Literal) Literal {
	if c.watchA == falsified {
		return c.watchB
	}
	return c.watchA
}

// replaceWatch swaps the watched literal old for the new literal next.
func (c *Clause) replaceWatch(old, next Literal) {
	if c.watchA == old {
		c.watchA = next
	} else {
		c.watchB = next
	}
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	for i, l := range c.literals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(l)))
	}
	sb.WriteByte(']')
	return sb.String()
}
