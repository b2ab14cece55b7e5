package space

// Pair is the element type of a Product space: a pair (A, B).
type Pair[A, B any] struct {
	First  A
	Second B
}

// Product combines two finite spaces A and B into the space of pairs
// (a, b). Enumerate walks the outer product with the A-enumeration
// varying slowest, matching index(a,b) = idxA*|B| + idxB.
type Product[A, B any] struct {
	a FiniteSpace[A]
	b FiniteSpace[B]
}

// NewProduct returns the product space of a and b.
func NewProduct[A, B any](a FiniteSpace[A], b FiniteSpace[B]) Product[A, B] {
	return Product[A, B]{a: a, b: b}
}

func (p Product[A, B]) Sample() Pair[A, B] {
	return Pair[A, B]{First: p.a.Sample(), Second: p.b.Sample()}
}

func (p Product[A, B]) Enumerate() []Pair[A, B] {
	as := p.a.Enumerate()
	bs := p.b.Enumerate()

	elems := make([]Pair[A, B], 0, len(as)*len(bs))
	for _, a := range as {
		for _, b := range bs {
			elems = append(elems, Pair[A, B]{First: a, Second: b})
		}
	}
	return elems
}

func (p Product[A, B]) Size() int {
	return p.a.Size() * p.b.Size()
}

func (p Product[A, B]) Index(e Pair[A, B]) int {
	ia := p.a.Index(e.First)
	ib := p.b.Index(e.Second)
	if ia == NotFound || ib == NotFound {
		return NotFound
	}
	return ia*p.b.Size() + ib
}
