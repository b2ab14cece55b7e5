// Command maze trains a tabular ε-greedy Q-learner to find the shortest
// path through a small grid maze and renders the final greedy rollout.
package main

import (
	"flag"
	"fmt"

	"rlcore/agent"
	"rlcore/approx"
	"rlcore/chooser"
	"rlcore/env/maze"
	"rlcore/period"
	"rlcore/trainer"
	"rlcore/tracer"
)

func main() {
	episodes := flag.Int("episodes", 2000, "number of training episodes")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	walls := []maze.Pos{{1, 1}, {1, 2}, {1, 3}}
	m := maze.New(4, 5, maze.Pos{0, 0}, maze.Pos{3, 4}, walls, -1, 10, *seed)

	q := approx.NewTabularQ[maze.Pos, int]()
	explore := chooser.NewWeighted[int](*seed + 1)
	ag := agent.NewEGreedyQ[maze.Pos, int](q, m.Actions(), 0.15, explore, *seed+2)

	ql := trainer.NewQLearner[maze.Pos, int](m.Actions(), 0.95, 0.3)

	t := tracer.New(40, *episodes)
	for i := 0; i < *episodes; i++ {
		ql.Train(ag, m, period.Episodes(1))
		t.Increment()
	}
	t.Done()

	fmt.Println("\nfinal greedy rollout:")
	ag.ToGreedy()
	obs := m.Reset()
	m.Render()
	for !obs.Done {
		obs = m.Step(ag.GetAction(obs.State))
		m.Render()
	}
}
