package agent

import "rlcore/space"

// Random selects actions by sampling the action space, ignoring state
// entirely.
type Random[S, A any] struct {
	actionSpace space.Space[A]
}

// NewRandom returns a Random agent over actionSpace.
func NewRandom[S, A any](actionSpace space.Space[A]) *Random[S, A] {
	return &Random[S, A]{actionSpace: actionSpace}
}

func (r *Random[S, A]) GetAction(s S) A {
	return r.actionSpace.Sample()
}
