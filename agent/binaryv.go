package agent

import (
	"fmt"

	"rlcore/approx"
	"rlcore/space"
)

// BinaryV returns one of exactly two actions based on the sign of V(s):
// the first action if V(s) < 0, the second otherwise. Construction
// requires the action space to have exactly two elements.
type BinaryV[S any, A any] struct {
	V       approx.VFunction[S]
	negative, nonNegative A
}

// NewBinaryV returns a BinaryV agent. actionSpace must enumerate exactly
// two elements; any other size is a contract violation and panics.
func NewBinaryV[S any, A any](v approx.VFunction[S], actionSpace space.FiniteSpace[A]) *BinaryV[S, A] {
	actions := actionSpace.Enumerate()
	if len(actions) != 2 {
		panic(fmt.Sprintf("agent: NewBinaryV: action space must have exactly 2 elements, got %d",
			len(actions)))
	}
	return &BinaryV[S, A]{V: v, negative: actions[0], nonNegative: actions[1]}
}

func (b *BinaryV[S, A]) GetAction(s S) A {
	if b.V.Eval(s) < 0 {
		return b.negative
	}
	return b.nonNegative
}

// Eval passes through to the underlying V-function.
func (b *BinaryV[S, A]) Eval(s S) float64 {
	return b.V.Eval(s)
}

// Update passes through to the underlying V-function.
func (b *BinaryV[S, A]) Update(s S, y, alpha float64) {
	b.V.Update(s, y, alpha)
}
