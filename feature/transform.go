package feature

// Unary composes a single feature with a pure unary function applied to
// its output.
type Unary[S any] struct {
	Inner Feature[S]
	Fn    func(float64) float64
}

// NewUnary returns fn(inner(s)) as a feature.
func NewUnary[S any](inner Feature[S], fn func(float64) float64) Unary[S] {
	return Unary[S]{Inner: inner, Fn: fn}
}

func (u Unary[S]) Extract(s S) float64 {
	return u.Fn(u.Inner.Extract(s))
}

func (u Unary[S]) Clone() Feature[S] {
	return Unary[S]{Inner: u.Inner.Clone(), Fn: u.Fn}
}

// Binary composes two features with a pure binary function of their
// outputs.
type Binary[S any] struct {
	A, B Feature[S]
	Fn   func(a, b float64) float64
}

// NewBinary returns fn(a(s), b(s)) as a feature.
func NewBinary[S any](a, b Feature[S], fn func(a, b float64) float64) Binary[S] {
	return Binary[S]{A: a, B: b, Fn: fn}
}

func (b Binary[S]) Extract(s S) float64 {
	return b.Fn(b.A.Extract(s), b.B.Extract(s))
}

func (b Binary[S]) Clone() Feature[S] {
	return Binary[S]{A: b.A.Clone(), B: b.B.Clone(), Fn: b.Fn}
}
