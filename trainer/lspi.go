package trainer

import (
	"rlcore/agent"
	"rlcore/approx"
	"rlcore/env"

	"gonum.org/v1/gonum/mat"
)

// LinearQAgent is the capability LSPolicyIteration needs: an agent whose
// action selection and parameter vector are driven by a linear
// (state,action)-feature model it also exposes for extraction.
type LinearQAgent[S, A any] interface {
	agent.ParamAgent[S, A]
	approx.FeatureExtractor[S, A]
}

// LSPolicyIteration solves for the least-squares temporal-difference
// fixed point of a linear Q-model in closed form, in a single pass over
// a fixed transition set.
type LSPolicyIteration[S any, A any] struct {
	Gamma float64
}

// NewLSPolicyIteration returns an LSPolicyIteration trainer.
func NewLSPolicyIteration[S any, A any](gamma float64) *LSPolicyIteration[S, A] {
	return &LSPolicyIteration[S, A]{Gamma: gamma}
}

// Train accumulates A (d x d) and b (d x 1) over transitions, with
// a' = ag.GetAction(s') evaluated against the agent's current (not
// yet updated) weights, solves A w = b, and installs w as the agent's
// parameter vector. A no-op on an empty transition set.
func (l *LSPolicyIteration[S, A]) Train(ag LinearQAgent[S, A], transitions []env.Transition[S, A]) {
	if len(transitions) == 0 {
		return
	}
	d := ag.NumFeatures()
	n := float64(len(transitions))

	accumA := mat.NewDense(d, d, nil)
	accumB := mat.NewVecDense(d, nil)

	for _, t := range transitions {
		aNext := ag.GetAction(t.NextState)
		phi := ag.Extract(t.State, t.Action)
		phiNext := ag.Extract(t.NextState, aNext)

		diff := make([]float64, d)
		for i := range diff {
			diff[i] = phi[i] - l.Gamma*phiNext[i]
		}

		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				accumA.Set(i, j, accumA.At(i, j)+phi[i]*diff[j])
			}
			accumB.SetVec(i, accumB.AtVec(i)+t.Reward*phi[i])
		}
	}

	normA := mat.NewDense(d, d, nil)
	normA.Scale(1/n, accumA)
	normB := mat.NewVecDense(d, nil)
	normB.ScaleVec(1/n, accumB)

	var w mat.VecDense
	if err := w.SolveVec(normA, normB); err != nil {
		return
	}

	weights := make([]float64, d)
	for i := range weights {
		weights[i] = w.AtVec(i)
	}
	ag.SetParams(weights)
}
