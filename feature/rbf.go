package feature

import (
	"math"

	"rlcore/metric"
)

// RBF is a radial basis feature centered at Center with variation
// Sigma2 (σ²): exp(-dist2(s, center) / (2σ²)).
type RBF[S any] struct {
	Metric  metric.Metric[S]
	Center  S
	Sigma2  float64
}

// NewRBF returns a radial basis feature using m to measure distance.
func NewRBF[S any](m metric.Metric[S], center S, sigma2 float64) RBF[S] {
	return RBF[S]{Metric: m, Center: center, Sigma2: sigma2}
}

func (r RBF[S]) Extract(s S) float64 {
	d2 := r.Metric.Dist2(s, r.Center)
	return math.Exp(-d2 / (2 * r.Sigma2))
}

func (r RBF[S]) Clone() Feature[S] {
	return RBF[S]{Metric: r.Metric, Center: r.Center, Sigma2: r.Sigma2}
}
