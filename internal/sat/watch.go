package sat

// watchIndex is the per-literal index of which clauses watch each literal,
// sized 2N+1 and indexed directly by Literal. Each entry stores a bare
// ClauseID rather than a cached guard literal, since BCP's replacement scan
// requires stable, unreordered clause literals; the "other watch" is read
// directly off the clause's watchA/watchB pair on demand instead.
type watchIndex struct {
	lists [][]ClauseID
}

func newWatchIndex(numVars int) *watchIndex {
	return &watchIndex{lists: make([][]ClauseID, 2*numVars+1)}
}

// add registers id to be woken when lit becomes false.
func (w *watchIndex) add(lit Literal, id ClauseID) {
	w.lists[lit] = append(w.lists[lit], id)
}

// remove drops id from lit's watch list, preserving the relative order of
// the remaining entries (a shift, not a swap-with-last): watch-list
// iteration order is observable in the decision/conflict counts a run
// reports, so a swap-based O(1) removal would silently change which clause
// gets processed next time this list is walked.
func (w *watchIndex) remove(lit Literal, id ClauseID) {
	list := w.lists[lit]
	for i, other := range list {
		if other == id {
			w.lists[lit] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// copyReversed returns lit's current watch list copied and reversed, for
// BCP to iterate safely: the live list underneath is mutated by add/remove
// as propagation proceeds, so iteration must never walk it directly.
func (w *watchIndex) copyReversed(lit Literal) []ClauseID {
	live := w.lists[lit]
	out := make([]ClauseID, len(live))
	for i, id := range live {
		out[len(live)-1-i] = id
	}
	return out
}
