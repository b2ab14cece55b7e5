// Command tictactoe trains a linear-Q ε-greedy agent against a
// uniformly random opponent and reports its win rate over a final
// evaluation block.
package main

import (
	"flag"
	"fmt"
	"log"

	"rlcore/agent"
	"rlcore/approx"
	"rlcore/chooser"
	"rlcore/config"
	"rlcore/env/tictactoe"
	"rlcore/feature"
	"rlcore/period"
	"rlcore/space"
	"rlcore/trainer"
	"rlcore/tracer"
)

// boardCell reads one cell of a tic-tac-toe board as a real value (0,
// 1, or 2 for empty, X, or O).
type boardCell struct{ idx int }

func (c boardCell) Extract(b tictactoe.Board) float64       { return float64(b[c.idx]) }
func (c boardCell) Clone() feature.Feature[tictactoe.Board] { return c }

// cellFeatures reads each of the nine board cells as a separate
// feature, giving the linear model one weight per (cell, action) pair.
func cellFeatures() feature.Bank[tictactoe.Board] {
	bank := make(feature.Bank[tictactoe.Board], 9)
	for i := 0; i < 9; i++ {
		bank[i] = boardCell{idx: i}
	}
	return bank
}

func main() {
	episodes := flag.Int("episodes", 20000, "number of training episodes")
	seed := flag.Uint64("seed", 1, "random seed")
	configPath := flag.String("config", "", "optional YAML file of hyperparameters (gamma, alpha, epsilon)")
	flag.Parse()

	cfg := &config.TrainingConfig{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	gamma := cfg.GetOrDefault("gamma", 0.95)
	alpha := cfg.GetOrDefault("alpha", 0.01)
	epsilon := cfg.GetOrDefault("epsilon", 0.2)

	g := tictactoe.New(1.0, -1.0, 0.0, 0.0, -0.5, *seed)
	actions := space.NewFinite(9, *seed+1)

	q := approx.NewLinearQ[tictactoe.Board, int](cellFeatures(), actions)
	explore := chooser.NewWeighted[int](*seed + 2)
	ag := agent.NewEGreedyQ[tictactoe.Board, int](q, actions, epsilon, explore, *seed+3)

	ql := trainer.NewQLearner[tictactoe.Board, int](actions, gamma, alpha)

	t := tracer.New(40, *episodes)
	for i := 0; i < *episodes; i++ {
		ql.Train(ag, g, period.Episodes(1))
		t.Increment()
	}
	t.Done()

	ag.ToGreedy()
	wins, draws, losses := 0, 0, 0
	for i := 0; i < 500; i++ {
		obs := g.Reset()
		for !obs.Done {
			obs = g.Step(ag.GetAction(obs.State))
		}
		switch {
		case obs.Reward > 0:
			wins++
		case obs.Reward < 0:
			losses++
		default:
			draws++
		}
	}
	fmt.Printf("\nevaluation: %d wins, %d draws, %d losses (of 500)\n", wins, draws, losses)
}
