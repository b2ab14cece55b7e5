package trainer

import (
	"testing"

	"rlcore/agent"
	"rlcore/approx"
	"rlcore/chooser"
	"rlcore/env/bandit"
	"rlcore/period"
	"rlcore/space"
)

func TestDynaQLearnsBetterArmWithPlanning(t *testing.T) {
	e := bandit.NewOddEven(1.0, -1.0, 5)
	actions := space.NewFinite(2, 6)

	q := approx.NewTabularQ[int, int]()
	explore := chooser.NewWeighted[int](7)
	ag := agent.NewEGreedyQ[int, int](q, actions, 0.2, explore, 8)

	dq := NewDynaQ[int, int](
		actions, 0.95, 0.5, 5,
		chooser.NewUniform[int](9),
		chooser.NewUniform[int](10),
		chooser.NewUniform[int](11),
	)
	dq.Train(ag, e, period.Episodes(100))

	ag.ToGreedy()
	if best := ag.GetAction(0); best != 0 {
		t.Fatalf("expected DynaQ to prefer arm 0 (reward 1.0), got arm %d", best)
	}
}

func TestDynaQModelLearnsObservedTransition(t *testing.T) {
	e := bandit.NewOddEven(1.0, -1.0, 1)
	actions := space.NewFinite(2, 2)
	q := approx.NewTabularQ[int, int]()
	ag := agent.NewGreedyQ[int, int](q, actions)

	dq := NewDynaQ[int, int](
		actions, 0.9, 0.5, 0,
		chooser.NewUniform[int](1), chooser.NewUniform[int](2), chooser.NewUniform[int](3),
	)
	dq.Train(ag, e, period.Episodes(3))

	if got := dq.Model.Transition(0, 0, 0); got != 1 {
		t.Fatalf("Model.Transition(0,0,0) = %v, want 1 (deterministic single-step bandit)", got)
	}
}
