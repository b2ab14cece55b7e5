package agent

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"rlcore/approx"
	"rlcore/space"
)

// Policy is a softmax-of-log-weights agent: it evaluates a
// differentiable log_func(s,a) for every enumerated action, then
// softmax-samples with temperature τ.
//
// LogGrad computes the gradient of log π(a|s) in closed form as the
// difference of expectations
// ∂log π(a|s)/∂θ = ∂z(s,a)/∂θ - Σ_b π(b|s)·∂z(s,b)/∂θ (z = log_func/τ).
type Policy[S any, A comparable] struct {
	LogFunc     approx.DifferentiableFunc[S, A]
	actionSpace space.FiniteSpace[A]
	tau         float64
	rand        *rand.Rand
}

// NewPolicy returns a softmax policy over logFunc with temperature tau.
func NewPolicy[S any, A comparable](logFunc approx.DifferentiableFunc[S, A],
	actionSpace space.FiniteSpace[A], tau float64, seed uint64) *Policy[S, A] {
	return &Policy[S, A]{
		LogFunc:     logFunc,
		actionSpace: actionSpace,
		tau:         tau,
		rand:        rand.New(rand.NewSource(seed)),
	}
}

// probs returns π(·|s) over the enumerated actions, in enumeration
// order, computed as softmax(log_func(s,a)/τ).
func (p *Policy[S, A]) probs(s S, actions []A) []float64 {
	z := make([]float64, len(actions))
	for i, a := range actions {
		z[i] = p.LogFunc.Calculate(s, a) / p.tau
	}
	maxZ := floats.Max(z)
	probs := make([]float64, len(z))
	for i, v := range z {
		probs[i] = math.Exp(v - maxZ)
	}
	floats.Scale(1/floats.Sum(probs), probs)
	return probs
}

func (p *Policy[S, A]) GetAction(s S) A {
	actions := p.actionSpace.Enumerate()
	probs := p.probs(s, actions)

	u := p.rand.Float64()
	cumulative := 0.0
	for i, pr := range probs {
		cumulative += pr
		if u <= cumulative {
			return actions[i]
		}
	}
	return actions[len(actions)-1]
}

func (p *Policy[S, A]) NumParams() int        { return p.LogFunc.NumParams() }
func (p *Policy[S, A]) GetParams() []float64  { return p.LogFunc.GetParams() }
func (p *Policy[S, A]) SetParams(v []float64) { p.LogFunc.SetParams(v) }

// LogGrad returns ∂log π(a|s)/∂θ via the closed-form softmax-policy
// gradient.
func (p *Policy[S, A]) LogGrad(s S, a A) []float64 {
	actions := p.actionSpace.Enumerate()
	probs := p.probs(s, actions)

	grad := make([]float64, p.LogFunc.NumParams())
	aGrad := p.LogFunc.Grad(s, a)
	for i := range grad {
		grad[i] = aGrad[i] / p.tau
	}

	expectation := make([]float64, p.LogFunc.NumParams())
	for i, b := range actions {
		bGrad := p.LogFunc.Grad(s, b)
		floats.AddScaled(expectation, probs[i]/p.tau, bGrad)
	}
	floats.Sub(grad, expectation)
	return grad
}
