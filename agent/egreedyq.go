package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"rlcore/approx"
	"rlcore/chooser"
	"rlcore/space"
)

// EGreedyQ is greedy with probability 1-ε and, with probability ε,
// delegates to a chooser using the state's Q-values as weights.
type EGreedyQ[S any, A comparable] struct {
	greedy      *GreedyQ[S, A]
	epsilon     float64
	chooser     chooser.Chooser[A]
	actionSpace space.FiniteSpace[A]
	rand        *rand.Rand
}

// NewEGreedyQ returns an ε-greedy agent. epsilon must be in [0,1]; any
// other value is a contract violation and panics. c is the chooser used
// to sample an action (weighted by Q-value) on the exploratory branch,
// typically chooser.NewWeighted or chooser.NewSoftmax.
func NewEGreedyQ[S any, A comparable](q approx.QFunction[S, A], actionSpace space.FiniteSpace[A],
	epsilon float64, c chooser.Chooser[A], seed uint64) *EGreedyQ[S, A] {
	if epsilon < 0 || epsilon > 1 {
		panic(fmt.Sprintf("agent: NewEGreedyQ: epsilon must be in [0,1], got %v", epsilon))
	}
	return &EGreedyQ[S, A]{
		greedy:      NewGreedyQ[S, A](q, actionSpace),
		epsilon:     epsilon,
		chooser:     c,
		actionSpace: actionSpace,
		rand:        rand.New(rand.NewSource(seed)),
	}
}

func (e *EGreedyQ[S, A]) GetAction(s S) A {
	if e.rand.Float64() < e.epsilon {
		actions := e.actionSpace.Enumerate()
		weights := actionValues[S, A](e.greedy.Q, actions, s)
		return e.chooser.Choose(actions, weights)
	}
	return e.greedy.GetAction(s)
}

// Eval passes through to the underlying Q-function.
func (e *EGreedyQ[S, A]) Eval(s S, a A) float64 {
	return e.greedy.Eval(s, a)
}

// Update passes through to the underlying Q-function.
func (e *EGreedyQ[S, A]) Update(s S, a A, y, alpha float64) {
	e.greedy.Update(s, a, y, alpha)
}

// Epsilon returns the agent's current exploration probability.
func (e *EGreedyQ[S, A]) Epsilon() float64 {
	return e.epsilon
}

// ToGreedy converts the agent in place to a fully greedy policy
// (epsilon = 0), as used when evaluating a trained agent.
func (e *EGreedyQ[S, A]) ToGreedy() {
	e.epsilon = 0
}
