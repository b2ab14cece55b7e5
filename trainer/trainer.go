// Package trainer implements the algorithms that drive an agent through
// an environment to optimize expected return: temporal-difference
// (QLearner, SARSALearner), model-based (DynaQ), batch (FittedQIteration,
// LSPolicyIteration), evolutionary (CrossEntropy, NaturalEvo), and
// policy-gradient (PolicyGradient) methods.
//
// Every trainer holds exclusive mutable access to both the agent and the
// environment for the duration of a call; there are no suspension
// points, and environments are assumed single-threaded and stateful.
package trainer

import (
	"rlcore/env"
	"rlcore/period"
)

// OnlineTrainer trains an agent from individual transitions, one at a
// time, and can also drive the full agent/environment loop itself.
// Concrete online trainers (QLearner, SARSALearner, DynaQ) implement
// this shape with a concretely-typed Ag parameter rather than this
// interface literally, since Go cannot express the differing agent
// capability constraints (ValueAgent, etc.) through one generic
// interface.
type OnlineTrainer[S, A, Ag any] interface {
	TrainStep(ag Ag, t env.Transition[S, A])
	Train(ag Ag, e env.Environment[S, A], budget period.TimePeriod)
}

// EpisodicTrainer trains an agent one episode's worth at a time.
type EpisodicTrainer[S, A, Ag any] interface {
	TrainStep(ag Ag, e env.Environment[S, A])
	Train(ag Ag, e env.Environment[S, A], budget period.TimePeriod)
}

// BatchTrainer trains an agent from a precollected, fixed transition
// set.
type BatchTrainer[S, A, Ag any] interface {
	Train(ag Ag, transitions []env.Transition[S, A])
}

// maxQ returns the maximum Q(s,·) over the enumerated actions.
func maxQ[S any, A comparable](eval func(s S, a A) float64, s S, actions []A) float64 {
	best := eval(s, actions[0])
	for _, a := range actions[1:] {
		if v := eval(s, a); v > best {
			best = v
		}
	}
	return best
}

// rollout runs the agent in the environment for exactly one episode,
// returning the aligned (states, actions, rewards) trajectory. Reward
// at index i is the reward earned by taking actions[i] in states[i]
// (post-step reward).
func rollout[S, A any](ag interface{ GetAction(s S) A }, e env.Environment[S, A]) (states []S, actions []A, rewards []float64) {
	obs := e.Reset()
	for {
		s := obs.State
		a := ag.GetAction(s)
		obs = e.Step(a)

		states = append(states, s)
		actions = append(actions, a)
		rewards = append(rewards, obs.Reward)

		if obs.Done {
			return states, actions, rewards
		}
	}
}
