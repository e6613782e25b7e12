package sat

import (
	"fmt"
	"log"

	"github.com/rhartert/yagh"
)

// DeciderKind selects the decision heuristic used to pick the next branching
// variable.
type DeciderKind int

const (
	DeciderOrdered DeciderKind = iota
	DeciderVSIDS
	DeciderMiniSAT
)

func (k DeciderKind) String() string {
	switch k {
	case DeciderOrdered:
		return "ORDERED"
	case DeciderVSIDS:
		return "VSIDS"
	case DeciderMiniSAT:
		return "MINISAT"
	default:
		return fmt.Sprintf("DeciderKind(%d)", int(k))
	}
}

// ParseDeciderKind parses the CLI's decider name (ORDERED, VSIDS, or
// MINISAT). An unrecognized name is reported as a *ConfigError here, before
// any solver is constructed with it.
func ParseDeciderKind(name string) (DeciderKind, error) {
	switch name {
	case "ORDERED":
		return DeciderOrdered, nil
	case "VSIDS":
		return DeciderVSIDS, nil
	case "MINISAT":
		return DeciderMiniSAT, nil
	default:
		return 0, newConfigError("unknown decider %q", name)
	}
}

// Decider is a tagged variant over the three branching heuristics: ordered
// (lowest unassigned variable), VSIDS (per-literal score), and MINISAT
// (per-variable score with phase saving). Only the fields relevant to the
// active kind are populated; the others stay at their zero value. Modeling
// it this way (one struct, a small closed set of branches) rather than as
// an interface avoids allocating a heap-boxed heuristic per run for a set
// that never grows.
type Decider struct {
	kind    DeciderKind
	numVars int

	// VSIDS: scored by literal.
	litScore  []float64 // size 2N+1, index by Literal
	litIncr   float64
	litGrowth float64 // additive growth applied to litIncr on Decay
	litQueue  *yagh.IntMap[float64] // keyed by Literal, priority = -score

	// MINISAT: scored by variable, plus phase saving.
	varScore []float64 // size N+1
	varIncr  float64
	varDecay float64 // divisor applied to varIncr on Decay
	phase    []bool  // size N+1, last assigned polarity (default false)
	varQueue *yagh.IntMap[float64]
}

// NewDecider returns a Decider of the given kind sized for numVars
// variables, with every variable initially present (a variable sits in the
// queue iff unassigned, and all variables start unassigned).
// vsidsBumpGrowth/minisatDecay come from Options rather than being pinned
// as literals here, so a caller tuning Options actually changes the
// solver's behavior.
func NewDecider(kind DeciderKind, numVars int, vsidsBumpGrowth, minisatDecay float64) *Decider {
	d := &Decider{kind: kind, numVars: numVars, litGrowth: vsidsBumpGrowth, varDecay: minisatDecay}
	switch kind {
	case DeciderVSIDS:
		d.litScore = make([]float64, 2*numVars+1)
		d.litIncr = 1
		d.litQueue = yagh.New[float64](2*numVars + 1)
		for v := 1; v <= numVars; v++ {
			d.litQueue.Put(v, 0)
			d.litQueue.Put(v+numVars, 0)
		}
	case DeciderMiniSAT:
		d.varScore = make([]float64, numVars+1)
		d.varIncr = 1
		d.phase = make([]bool, numVars+1)
		d.varQueue = yagh.New[float64](numVars + 1)
		for v := 1; v <= numVars; v++ {
			d.varQueue.Put(v, 0)
		}
	}
	return d
}

// Remove takes variable v (and, for VSIDS, its complementary literal) out of
// the candidate pool. Called the moment v is assigned, by decision or by
// BCP implication, so the pool always reflects the unassigned variables.
func (d *Decider) Remove(s *Solver, v int) {
	switch d.kind {
	case DeciderVSIDS:
		d.litQueue.Remove(int(s.positiveLiteral(v)))
		d.litQueue.Remove(int(s.negativeLiteral(v)))
	case DeciderMiniSAT:
		d.varQueue.Remove(v)
	}
}

// Reinsert puts v back into the candidate pool after it is unassigned by
// backtrack, restoring its current score. val is the value v held before
// being unassigned; MINISAT records it as the saved phase.
func (d *Decider) Reinsert(v int, val bool) {
	switch d.kind {
	case DeciderVSIDS:
		d.litQueue.Put(v, -d.litScore[v])
		lit := v + d.numVars
		d.litQueue.Put(lit, -d.litScore[lit])
	case DeciderMiniSAT:
		d.phase[v] = val
		d.varQueue.Put(v, -d.varScore[v])
	}
}

// SetPhase records the polarity v was just assigned, used by MINISAT as the
// saved phase for its next decision. No-op for the other kinds.
func (d *Decider) SetPhase(v int, val bool) {
	if d.kind == DeciderMiniSAT {
		d.phase[v] = val
	}
}

// BumpLiteral increases lit's VSIDS score by the current increment. No-op
// for the other kinds.
func (d *Decider) BumpLiteral(lit Literal) {
	if d.kind != DeciderVSIDS {
		return
	}
	newScore := d.litScore[lit] + d.litIncr
	d.litScore[lit] = newScore
	if d.litQueue.Contains(int(lit)) {
		d.litQueue.Put(int(lit), -newScore)
	}
	if newScore > 1e100 {
		d.rescaleVSIDS()
	}
}

// BumpVariable increases v's MINISAT score by the current increment. No-op
// for the other kinds.
func (d *Decider) BumpVariable(v int) {
	if d.kind != DeciderMiniSAT {
		return
	}
	newScore := d.varScore[v] + d.varIncr
	d.varScore[v] = newScore
	if d.varQueue.Contains(v) {
		d.varQueue.Put(v, -newScore)
	}
	if newScore > 1e100 {
		d.rescaleMiniSAT()
	}
}

// Decay grows the increment applied by the next bump. VSIDS adds
// litGrowth (additive growth); MINISAT divides by varDecay (multiplicative
// growth, equivalent to a global score decay). Both rescale at the 1e100
// threshold to avoid unbounded float growth over a long run.
func (d *Decider) Decay() {
	switch d.kind {
	case DeciderVSIDS:
		d.litIncr += d.litGrowth
		if d.litIncr > 1e100 {
			d.rescaleVSIDS()
		}
	case DeciderMiniSAT:
		d.varIncr /= d.varDecay
		if d.varIncr > 1e100 {
			d.rescaleMiniSAT()
		}
	}
}

func (d *Decider) rescaleVSIDS() {
	d.litIncr *= 1e-100
	for lit, sc := range d.litScore {
		newScore := sc * 1e-100
		d.litScore[lit] = newScore
		if d.litQueue.Contains(lit) {
			d.litQueue.Put(lit, -newScore)
		}
	}
}

func (d *Decider) rescaleMiniSAT() {
	d.varIncr *= 1e-100
	for v, sc := range d.varScore {
		newScore := sc * 1e-100
		d.varScore[v] = newScore
		if d.varQueue.Contains(v) {
			d.varQueue.Put(v, -newScore)
		}
	}
}

// NextDecision returns the literal to assign true for the next decision, or
// ok=false if every variable is already assigned, meaning the formula is
// satisfied.
func (d *Decider) NextDecision(s *Solver) (lit Literal, ok bool) {
	switch d.kind {
	case DeciderOrdered:
		for v := 1; v <= d.numVars; v++ {
			if !s.tr.isAssigned(v) {
				return s.positiveLiteral(v), true
			}
		}
		return 0, false

	case DeciderVSIDS:
		item, found := d.litQueue.Pop()
		if !found {
			return 0, false
		}
		return Literal(item.Elem), true

	case DeciderMiniSAT:
		item, found := d.varQueue.Pop()
		if !found {
			return 0, false
		}
		v := item.Elem
		if d.phase[v] {
			return s.positiveLiteral(v), true
		}
		return s.negativeLiteral(v), true

	default:
		log.Fatalf("unknown decider kind %v", d.kind)
		return 0, false
	}
}
