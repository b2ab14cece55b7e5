package trainer

import (
	"testing"

	"rlcore/agent"
	"rlcore/approx"
	"rlcore/env/bandit"
	"rlcore/feature"
	"rlcore/period"
	"rlcore/space"
)

func TestNaturalEvoMovesTowardHigherReward(t *testing.T) {
	e := bandit.NewOddEven(1.0, -1.0, 1)
	actions := space.NewFinite(2, 2)
	bank := feature.Bank[int]{}
	q := approx.NewLinearQ[int, int](bank, actions)
	ag := agent.NewPolicy[int, int](q, actions, 1.0, 3)

	ne := NewNaturalEvo[int, int](0.05, 0.5, 40, 20, 5)
	ne.Train(ag, e, period.Episodes(1000))

	params := ag.GetParams()
	if len(params) != ag.NumParams() {
		t.Fatalf("GetParams length = %d, want %d", len(params), ag.NumParams())
	}

	var higher, lower int
	for i := 0; i < 300; i++ {
		if ag.GetAction(0) == 0 {
			higher++
		} else {
			lower++
		}
	}
	if higher < lower {
		t.Fatalf("expected natural evolution to prefer arm 0 more often, got %d vs %d picks", higher, lower)
	}
}
