package trainer

import (
	"testing"

	"rlcore/agent"
	"rlcore/approx"
	"rlcore/env"
	"rlcore/space"
)

func TestFittedQIterationConvergesOnSimpleChain(t *testing.T) {
	// A two-state chain: state 0 -> action 0 -> state 1 (terminal, reward 1).
	data := []env.Transition[int, int]{
		{State: 0, Action: 0, Reward: 0.0, NextState: 1},
		{State: 1, Action: 0, Reward: 1.0, NextState: 1},
	}

	q := approx.NewTabularQ[int, int]()
	actions := space.NewFinite(1, 1)
	ag := agent.NewGreedyQ[int, int](q, actions)

	f := NewFittedQIteration[int, int](actions, 0.9, 1.0, 50)
	f.Train(ag, data)

	// The self loop on state 1 is never marked Done, so with alpha=1 each
	// iteration sets q1 = 1 + 0.9*q1, which approaches the fixed point 10
	// (about 9.95 after 50 iterations); check the value moved
	// substantially off its zero initialization toward the reward.
	if got := q.Eval(1, 0); got <= 0.5 {
		t.Fatalf("Eval(1,0) = %v, want a value that grew substantially from the reward signal", got)
	}
}

func TestFittedQIterationEmptyTransitionsNoOp(t *testing.T) {
	q := approx.NewTabularQ[int, int]()
	actions := space.NewFinite(1, 1)
	ag := agent.NewGreedyQ[int, int](q, actions)

	f := NewFittedQIteration[int, int](actions, 0.9, 1.0, 10)
	f.Train(ag, nil)

	if got := q.Eval(0, 0); got != 0 {
		t.Fatalf("Eval(0,0) = %v, want 0 (no-op on empty transition set)", got)
	}
}
