package trainer

import (
	"rlcore/agent"
	"rlcore/env"
	"rlcore/space"
)

// FittedQIteration trains a ValueAgent in batch from a fixed transition
// set: each iteration computes every target from the pre-iteration
// Q-function (targets are collected before any update is applied, so
// updates within one iteration never see each other's effect) and then
// applies all of the updates.
type FittedQIteration[S any, A comparable] struct {
	Actions    space.FiniteSpace[A]
	Gamma      float64
	Alpha      float64
	Iterations int
}

// NewFittedQIteration returns a FittedQIteration trainer.
func NewFittedQIteration[S any, A comparable](actions space.FiniteSpace[A], gamma, alpha float64, iterations int) *FittedQIteration[S, A] {
	return &FittedQIteration[S, A]{Actions: actions, Gamma: gamma, Alpha: alpha, Iterations: iterations}
}

// Train runs Iterations passes of fitted-Q over transitions.
func (f *FittedQIteration[S, A]) Train(ag agent.ValueAgent[S, A], transitions []env.Transition[S, A]) {
	if len(transitions) == 0 {
		return
	}
	actions := f.Actions.Enumerate()

	for iter := 0; iter < f.Iterations; iter++ {
		targets := make([]float64, len(transitions))
		for i, t := range transitions {
			targets[i] = t.Reward + f.Gamma*maxQ(ag.Eval, t.NextState, actions)
		}
		for i, t := range transitions {
			ag.Update(t.State, t.Action, targets[i], f.Alpha)
		}
	}
}
