package sat

// LubyGenerator yields the Luby sequence 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,...
// one element at a time, memoizing the sequence as it grows so each call is
// O(1) amortized.
type LubyGenerator struct {
	seq  []int
	mult int
	minu int
}

// NewLubyGenerator returns a LubyGenerator in its initial state.
func NewLubyGenerator() *LubyGenerator {
	return &LubyGenerator{mult: 1, minu: 0}
}

// Next returns the next element of the sequence.
func (lg *LubyGenerator) Next() int {
	size := len(lg.seq)
	toFill := size + 1

	if isPowerOfTwo(toFill + 1) {
		lg.seq = append(lg.seq, lg.mult)
		lg.minu = toFill
		lg.mult *= 2
	} else {
		lg.seq = append(lg.seq, lg.seq[toFill-lg.minu-1])
	}

	return lg.seq[size]
}

// Reset restores the generator to its initial state.
func (lg *LubyGenerator) Reset() {
	lg.seq = nil
	lg.mult = 1
	lg.minu = 0
}

// isPowerOfTwo reports whether n is a power of two, equivalent to testing
// whether log2(n) is an integer.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
