package agent

import (
	"rlcore/approx"
	"rlcore/space"
)

// linearQ is the subset of *approx.LinearQ that LinearGreedyQ needs:
// evaluation, update, parameter I/O, and feature extraction all in one
// concrete type, unlike the narrower QFunction interface GreedyQ wraps.
type linearQ[S any, A comparable] interface {
	approx.QFunction[S, A]
	approx.ParameterizedFunc
	approx.FeatureExtractor[S, A]
}

// LinearGreedyQ is a greedy agent over a linear Q-model, additionally
// exposing the model's parameter vector and feature extraction: the
// shape LSPolicyIteration needs to solve for and install weights
// directly.
type LinearGreedyQ[S any, A comparable] struct {
	*GreedyQ[S, A]
	q linearQ[S, A]
}

// NewLinearGreedyQ returns a greedy agent over a linear Q-model.
func NewLinearGreedyQ[S any, A comparable](q linearQ[S, A], actionSpace space.FiniteSpace[A]) *LinearGreedyQ[S, A] {
	return &LinearGreedyQ[S, A]{GreedyQ: NewGreedyQ[S, A](q, actionSpace), q: q}
}

func (l *LinearGreedyQ[S, A]) NumParams() int             { return l.q.NumParams() }
func (l *LinearGreedyQ[S, A]) GetParams() []float64       { return l.q.GetParams() }
func (l *LinearGreedyQ[S, A]) SetParams(v []float64)      { l.q.SetParams(v) }
func (l *LinearGreedyQ[S, A]) NumFeatures() int           { return l.q.NumFeatures() }
func (l *LinearGreedyQ[S, A]) Extract(s S, a A) []float64 { return l.q.Extract(s, a) }
