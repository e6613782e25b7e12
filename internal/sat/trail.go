package sat

// AssignmentRecord is a single entry in the trail: the variable it assigns,
// the value, the decision level it was assigned at, the antecedent clause
// that forced it (noAntecedent for decisions and unit-derived level-0
// facts), and its position in the trail.
type AssignmentRecord struct {
	Var        int
	Value      bool
	Level      int
	Antecedent ClauseID
	TrailIndex int
}

// trail is the ordered sequence of AssignmentRecords plus the variable
// index (mapping a variable to its current AssignmentRecord) and the
// decision-level boundaries needed to unwind it. The transient conflict a
// BCP pass can hit is deliberately not represented here: it is carried as
// two fields on *Solver (see solver.go) that are set the instant BCP
// detects a conflict — the analyzer only ever needs the conflicting clause
// id and the level, so there is no need to push a sentinel record for it.
type trail struct {
	records []AssignmentRecord

	// varPos[v] is the trail index of v's current AssignmentRecord, or -1
	// if v is unassigned.
	varPos []int

	// trailLim[i] is the trail length at the moment decision level i+1
	// began; len(trailLim) is the current decision level.
	trailLim []int
}

func newTrail(numVars int) *trail {
	varPos := make([]int, numVars+1)
	for i := range varPos {
		varPos[i] = -1
	}
	return &trail{varPos: varPos}
}

func (t *trail) decisionLevel() int {
	return len(t.trailLim)
}

func (t *trail) isAssigned(v int) bool {
	return t.varPos[v] != -1
}

func (t *trail) recordOf(v int) *AssignmentRecord {
	return &t.records[t.varPos[v]]
}

// beginDecisionLevel marks the start of a new decision level at the
// trail's current length, called right before the decision's own
// AssignmentRecord is pushed.
func (t *trail) beginDecisionLevel() {
	t.trailLim = append(t.trailLim, len(t.records))
}

// push appends a new AssignmentRecord and indexes it by variable. The
// caller is responsible for all consequences of the assignment (updating
// watch state, the decider's candidate pool, etc.) — push only maintains
// the trail and variable-index invariants.
func (t *trail) push(v int, value bool, antecedent ClauseID) AssignmentRecord {
	r := AssignmentRecord{
		Var:        v,
		Value:      value,
		Level:      t.decisionLevel(),
		Antecedent: antecedent,
		TrailIndex: len(t.records),
	}
	t.records = append(t.records, r)
	t.varPos[v] = r.TrailIndex
	return r
}

// popLevel removes every record above decision level target, in LIFO
// order, invoking undo for each one before it is erased from the trail.
func (t *trail) popLevel(target int, undo func(AssignmentRecord)) {
	for t.decisionLevel() > target {
		boundary := t.trailLim[len(t.trailLim)-1]
		for len(t.records) > boundary {
			r := t.records[len(t.records)-1]
			t.records = t.records[:len(t.records)-1]
			t.varPos[r.Var] = -1
			undo(r)
		}
		t.trailLim = t.trailLim[:len(t.trailLim)-1]
	}
}
