// Package bandit implements single-state multi-armed bandit fixtures
// used to exercise the agent/trainer loop end to end: pulling arm a
// yields an immediate reward and the episode ends after one step.
package bandit

import (
	"rlcore/env"
	"rlcore/space"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NArmed is an N-armed bandit: arm i pays out Normal(Means[i], Stddev)
// reward and the episode ends immediately after the pull.
type NArmed struct {
	Means  []float64
	Stddev float64

	states  space.Finite
	actions space.Finite
	source  rand.Source
}

// NewNArmed returns an N-armed bandit with the given per-arm means and
// shared reward stddev, seeded with seed.
func NewNArmed(means []float64, stddev float64, seed uint64) *NArmed {
	return &NArmed{
		Means:   means,
		Stddev:  stddev,
		states:  space.NewFinite(1, seed),
		actions: space.NewFinite(len(means), seed+1),
		source:  rand.NewSource(seed + 2),
	}
}

func (b *NArmed) StateSpace() space.Space[int]  { return b.states }
func (b *NArmed) ActionSpace() space.Space[int] { return b.actions }

// Actions returns the arm space, enumerable for trainers and agents
// that need to loop over every action.
func (b *NArmed) Actions() space.FiniteSpace[int] { return b.actions }

func (b *NArmed) Reset() env.Observation[int] {
	return env.Observation[int]{State: 0, Reward: 0, Done: false}
}

func (b *NArmed) Step(action int) env.Observation[int] {
	reward := distuv.Normal{Mu: b.Means[action], Sigma: b.Stddev, Src: b.source}.Rand()
	return env.Observation[int]{State: 0, Reward: reward, Done: true}
}

func (b *NArmed) Render() {}

// OddEven is the canonical two-armed bandit used to sanity-check a
// trainer's ability to distinguish a better arm from a worse one: arm 0
// ("odd") pays OddReward, arm 1 ("even") pays EvenReward, deterministically.
type OddEven struct {
	OddReward, EvenReward float64

	states  space.Finite
	actions space.Finite
}

// NewOddEven returns a deterministic two-armed bandit.
func NewOddEven(oddReward, evenReward float64, seed uint64) *OddEven {
	return &OddEven{
		OddReward:  oddReward,
		EvenReward: evenReward,
		states:     space.NewFinite(1, seed),
		actions:    space.NewFinite(2, seed+1),
	}
}

func (o *OddEven) StateSpace() space.Space[int]  { return o.states }
func (o *OddEven) ActionSpace() space.Space[int] { return o.actions }

// Actions returns the arm space, enumerable for trainers and agents
// that need to loop over every action.
func (o *OddEven) Actions() space.FiniteSpace[int] { return o.actions }

func (o *OddEven) Reset() env.Observation[int] {
	return env.Observation[int]{State: 0, Reward: 0, Done: false}
}

func (o *OddEven) Step(action int) env.Observation[int] {
	reward := o.EvenReward
	if action == 0 {
		reward = o.OddReward
	}
	return env.Observation[int]{State: 0, Reward: reward, Done: true}
}

func (o *OddEven) Render() {}
