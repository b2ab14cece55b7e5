package trainer

import (
	"rlcore/agent"
	"rlcore/env"
	"rlcore/period"
	"rlcore/space"
)

// QLearner trains a ValueAgent off-policy: the update target bootstraps
// off the greedy action in the next state regardless of which action the
// agent actually took there.
//
//	y = r + gamma * max_a' Q(s', a')   (or just r, when the transition ends the episode)
type QLearner[S any, A comparable] struct {
	Actions space.FiniteSpace[A]
	Gamma   float64
	Alpha   float64
}

// NewQLearner returns a QLearner with the given discount and step size.
func NewQLearner[S any, A comparable](actions space.FiniteSpace[A], gamma, alpha float64) *QLearner[S, A] {
	return &QLearner[S, A]{Actions: actions, Gamma: gamma, Alpha: alpha}
}

// TrainStep applies one off-policy Q-learning update from a single
// transition.
func (q *QLearner[S, A]) TrainStep(ag agent.ValueAgent[S, A], t env.Transition[S, A], done bool) {
	y := t.Reward
	if !done {
		y += q.Gamma * maxQ(ag.Eval, t.NextState, q.Actions.Enumerate())
	}
	ag.Update(t.State, t.Action, y, q.Alpha)
}

// Train runs ag against e, applying a TrainStep after every environment
// step, until budget is exhausted.
func (q *QLearner[S, A]) Train(ag agent.ValueAgent[S, A], e env.Environment[S, A], budget period.TimePeriod) {
	for !budget.IsNone() {
		obs := e.Reset()
		s := obs.State
		done := false
		for !done {
			a := ag.GetAction(s)
			next := e.Step(a)
			t := env.Transition[S, A]{State: s, Action: a, Reward: next.Reward, NextState: next.State}
			q.TrainStep(ag, t, next.Done)

			s = next.State
			done = next.Done
			budget = budget.Dec(done)
			if budget.IsNone() {
				return
			}
		}
	}
}
