package agent

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"rlcore/approx"
)

// Gaussian samples a per-dimension continuous action from N(μ_i(s), σ),
// where μ is a differentiable vector function and σ is a fixed scalar
// standard deviation shared across dimensions.
type Gaussian[S any] struct {
	Mean   approx.VectorDifferentiableFunc[S]
	Sigma  float64
	source rand.Source
}

// NewGaussian returns a Gaussian agent with mean network mean and fixed
// standard deviation sigma.
func NewGaussian[S any](mean approx.VectorDifferentiableFunc[S], sigma float64, seed uint64) *Gaussian[S] {
	return &Gaussian[S]{Mean: mean, Sigma: sigma, source: rand.NewSource(seed)}
}

func (g *Gaussian[S]) GetAction(s S) []float64 {
	mu := g.Mean.Calculate(s)
	action := make([]float64, len(mu))
	for i, m := range mu {
		dist := distuv.Normal{Mu: m, Sigma: g.Sigma, Src: g.source}
		action[i] = dist.Rand()
	}
	return action
}

func (g *Gaussian[S]) NumParams() int        { return g.Mean.NumParams() }
func (g *Gaussian[S]) GetParams() []float64  { return g.Mean.GetParams() }
func (g *Gaussian[S]) SetParams(v []float64) { g.Mean.SetParams(v) }

// LogGrad returns the gradient of log π(a|s) with respect to the mean
// network's parameters: Σ_i (a_i - μ_i)/σ² · ∂μ_i/∂θ.
func (g *Gaussian[S]) LogGrad(s S, a []float64) []float64 {
	mu := g.Mean.Calculate(s)
	dmu := g.Mean.Grad(s)

	grad := make([]float64, g.Mean.NumParams())
	sigma2 := g.Sigma * g.Sigma
	for i := range mu {
		scale := (a[i] - mu[i]) / sigma2
		for j := range grad {
			grad[j] += scale * dmu[i][j]
		}
	}
	return grad
}
