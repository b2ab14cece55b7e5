package trainer

import (
	"rlcore/agent"
	"rlcore/env"
	"rlcore/period"
)

// SARSALearner trains a ValueAgent on-policy: the update target
// bootstraps off the value of whatever action the agent actually
// chooses next, so the agent is trained toward the policy it follows
// rather than the greedy one.
//
//	y = r + gamma * Q(s', a')   (or just r, when the transition ends the episode)
type SARSALearner[S any, A comparable] struct {
	Gamma float64
	Alpha float64
}

// NewSARSALearner returns a SARSALearner with the given discount and
// step size.
func NewSARSALearner[S any, A comparable](gamma, alpha float64) *SARSALearner[S, A] {
	return &SARSALearner[S, A]{Gamma: gamma, Alpha: alpha}
}

// TrainStep applies one on-policy SARSA update. nextAction is the action
// the agent will actually take from t.NextState (ignored when done).
func (s *SARSALearner[S, A]) TrainStep(ag agent.ValueAgent[S, A], t env.Transition[S, A], nextAction A, done bool) {
	y := t.Reward
	if !done {
		y += s.Gamma * ag.Eval(t.NextState, nextAction)
	}
	ag.Update(t.State, t.Action, y, s.Alpha)
}

// Train runs ag against e for budget, choosing the next action up front
// each step so the same action both bootstraps the update and is the one
// actually taken.
func (s *SARSALearner[S, A]) Train(ag agent.ValueAgent[S, A], e env.Environment[S, A], budget period.TimePeriod) {
	for !budget.IsNone() {
		obs := e.Reset()
		state := obs.State
		action := ag.GetAction(state)
		done := false

		for !done {
			next := e.Step(action)
			var nextAction A
			if !next.Done {
				nextAction = ag.GetAction(next.State)
			}

			t := env.Transition[S, A]{State: state, Action: action, Reward: next.Reward, NextState: next.State}
			s.TrainStep(ag, t, nextAction, next.Done)

			state, action, done = next.State, nextAction, next.Done
			budget = budget.Dec(done)
			if budget.IsNone() {
				return
			}
		}
	}
}
