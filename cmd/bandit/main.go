// Command bandit trains a tabular ε-greedy Q-learner against a
// two-armed bandit and reports which arm it learned to prefer.
package main

import (
	"flag"
	"fmt"

	"rlcore/agent"
	"rlcore/approx"
	"rlcore/chooser"
	"rlcore/env/bandit"
	"rlcore/period"
	"rlcore/space"
	"rlcore/trainer"
	"rlcore/tracer"
)

func main() {
	episodes := flag.Int("episodes", 500, "number of training episodes")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	e := bandit.NewOddEven(1.0, -1.0, *seed)
	actions := space.NewFinite(2, *seed+1)

	q := approx.NewTabularQ[int, int]()
	explore := chooser.NewWeighted[int](*seed + 2)
	ag := agent.NewEGreedyQ[int, int](q, actions, 0.1, explore, *seed+3)

	ql := trainer.NewQLearner[int, int](actions, 0.95, 0.1)

	t := tracer.New(40, *episodes)
	budget := period.Episodes(*episodes)
	for !budget.IsNone() {
		ql.Train(ag, e, period.Episodes(1))
		t.Increment()
		budget = budget.Dec(true)
	}
	t.Done()

	ag.ToGreedy()
	fmt.Printf("\nlearned greedy action: %d\n", ag.GetAction(0))
}
