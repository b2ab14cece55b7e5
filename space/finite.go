package space

import "golang.org/x/exp/rand"

// Finite is the space {0, 1, ..., n-1}, enumerated in increasing order.
type Finite struct {
	n    int
	rand *rand.Rand
}

// NewFinite returns a new Finite space of size n, sampling with the
// given seed.
func NewFinite(n int, seed uint64) Finite {
	if n <= 0 {
		panic("space: Finite size must be positive")
	}
	return Finite{n: n, rand: rand.New(rand.NewSource(seed))}
}

func (f Finite) Sample() int {
	return f.rand.Intn(f.n)
}

func (f Finite) Enumerate() []int {
	elems := make([]int, f.n)
	for i := range elems {
		elems[i] = i
	}
	return elems
}

func (f Finite) Size() int {
	return f.n
}

func (f Finite) Index(e int) int {
	if e < 0 || e >= f.n {
		return NotFound
	}
	return e
}
