// Package model implements approximate environment models used by
// model-based trainers (Dyna-Q's planning updates).
package model

import "rlcore/env"

// Model approximates an environment's transition and reward functions
// from observed transitions.
type Model[S, A comparable] interface {
	// Transition returns the empirical probability of moving to next
	// after taking action in curr.
	Transition(curr S, action A, next S) float64
	// Reward returns the (last observed) reward for moving to next
	// after taking action in curr.
	Reward(curr S, action A, next S) float64
	Update(t env.Transition[S, A])
}
