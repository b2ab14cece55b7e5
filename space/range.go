package space

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Range is the continuous interval [lo, hi), sampled uniformly. Range is
// not a FiniteSpace: enumerating it is a contract violation left to the
// caller (there is no finite enumeration of a real interval).
type Range struct {
	lo, hi float64
	dist   distuv.Uniform
}

// NewRange returns a new Range space over [lo, hi). The constructor
// rejects lo >= hi with an error rather than panicking, since this is a
// recoverable construction mistake rather than a use-time contract
// violation.
func NewRange(lo, hi float64, seed uint64) (Range, error) {
	if lo >= hi {
		return Range{}, fmt.Errorf("space: NewRange: lo (%v) must be < hi (%v)", lo, hi)
	}
	source := rand.NewSource(seed)
	return Range{
		lo: lo, hi: hi,
		dist: distuv.Uniform{Min: lo, Max: hi, Src: source},
	}, nil
}

func (r Range) Sample() float64 {
	return r.dist.Rand()
}

// Lo returns the lower (inclusive) bound of the range.
func (r Range) Lo() float64 { return r.lo }

// Hi returns the upper (exclusive) bound of the range.
func (r Range) Hi() float64 { return r.hi }
