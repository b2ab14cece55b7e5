package trainer

import (
	"rlcore/agent"
	"rlcore/env"
	"rlcore/period"
	"rlcore/stat"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Natural evolution strategies defaults.
const (
	DefaultNESAlpha = 0.001
	DefaultNESSigma = 0.1
	DefaultNESM     = 100
	DefaultNESIters = 10
)

// NaturalEvo trains a ParamAgent with evolution strategies using a
// shared scalar sigma: each generation draws M samples from
// N(mu, sigma*I) centered on the agent's current parameters, scores
// each by installing it and running one episode, z-normalizes the
// scores across the generation, and nudges mu along the
// score-weighted average perturbation.
type NaturalEvo[S, A any] struct {
	Alpha float64
	Sigma float64
	M     int
	Iters int

	source rand.Source
	rand   *rand.Rand
}

// NewNaturalEvo returns a NaturalEvo trainer seeded with seed.
func NewNaturalEvo[S, A any](alpha, sigma float64, m, iters int, seed uint64) *NaturalEvo[S, A] {
	source := rand.NewSource(seed)
	return &NaturalEvo[S, A]{Alpha: alpha, Sigma: sigma, M: m, Iters: iters, source: source, rand: rand.New(source)}
}

// Train runs Iters generations of natural evolution strategies against
// e, leaving ag installed with the final mu.
func (ne *NaturalEvo[S, A]) Train(ag agent.ParamAgent[S, A], e env.Environment[S, A], budget period.TimePeriod) {
	mu := ag.GetParams()
	d := len(mu)

	for iter := 0; iter < ne.Iters && !budget.IsNone(); iter++ {
		samples := make([][]float64, ne.M)
		scores := make([]float64, ne.M)

		for i := 0; i < ne.M; i++ {
			s := make([]float64, d)
			for j := 0; j < d; j++ {
				s[j] = distuv.Normal{Mu: mu[j], Sigma: ne.Sigma, Src: ne.source}.Rand()
			}
			samples[i] = s
			ag.SetParams(s)
			scores[i] = evaluateReturn(ag, e, period.Episodes(1))
		}

		normScores := stat.Normalize(scores)

		update := make([]float64, d)
		for i := range samples {
			for j := 0; j < d; j++ {
				update[j] += normScores[i] * samples[i][j]
			}
		}
		for j := range update {
			mu[j] += ne.Alpha * update[j] / (float64(ne.M) * ne.Sigma)
		}
		ag.SetParams(mu)

		budget = budget.Dec(true)
	}
}
