package agent

import (
	"rlcore/approx"
	"rlcore/space"
)

// GreedyQ selects the action with the highest Q-value in the given
// state, breaking ties by enumeration order (the first maximal action
// wins).
type GreedyQ[S any, A comparable] struct {
	Q           approx.QFunction[S, A]
	actionSpace space.FiniteSpace[A]
}

// NewGreedyQ returns a greedy agent over q and actionSpace.
func NewGreedyQ[S any, A comparable](q approx.QFunction[S, A], actionSpace space.FiniteSpace[A]) *GreedyQ[S, A] {
	return &GreedyQ[S, A]{Q: q, actionSpace: actionSpace}
}

func (g *GreedyQ[S, A]) GetAction(s S) A {
	actions := g.actionSpace.Enumerate()
	best := actions[0]
	bestVal := g.Q.Eval(s, best)
	for _, a := range actions[1:] {
		if v := g.Q.Eval(s, a); v > bestVal {
			bestVal = v
			best = a
		}
	}
	return best
}

// Eval passes through to the underlying Q-function.
func (g *GreedyQ[S, A]) Eval(s S, a A) float64 {
	return g.Q.Eval(s, a)
}

// Update passes through to the underlying Q-function.
func (g *GreedyQ[S, A]) Update(s S, a A, y, alpha float64) {
	g.Q.Update(s, a, y, alpha)
}

// actionValues returns the Q-value of every enumerated action, in
// enumeration order: the weight vector used by epsilon-greedy's
// chooser delegation.
func actionValues[S any, A comparable](q approx.QFunction[S, A], actions []A, s S) []float64 {
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = q.Eval(s, a)
	}
	return values
}
