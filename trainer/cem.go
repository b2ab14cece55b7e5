package trainer

import (
	"math"
	"sort"

	"rlcore/agent"
	"rlcore/env"
	"rlcore/period"
	"rlcore/stat"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Cross-entropy method defaults.
const (
	DefaultCEMElite = 0.2
	DefaultCEMM     = 100
	DefaultCEMIters = 10
)

// DefaultCEMEvalPeriod is the default per-sample evaluation budget.
func DefaultCEMEvalPeriod() period.TimePeriod { return period.Episodes(1) }

// CrossEntropy trains a ParamAgent by maintaining a diagonal Gaussian
// over its parameter vector, initialized from the agent's current
// parameters on first use (standard deviations drawn uniformly from
// [0,1)). Each generation (Iters per call to Train) draws M samples,
// scores each by installing it and running the agent for EvalPeriod,
// keeps the elite fraction by return, refits the Gaussian to the elite
// samples, and installs the refit mean.
type CrossEntropy[S, A any] struct {
	Elite      float64
	M          int
	Iters      int
	EvalPeriod period.TimePeriod

	source rand.Source
	rand   *rand.Rand
	mean   []float64
	stddev []float64
}

// NewCrossEntropy returns a CrossEntropy trainer seeded with seed.
func NewCrossEntropy[S, A any](elite float64, m, iters int, evalPeriod period.TimePeriod, seed uint64) *CrossEntropy[S, A] {
	source := rand.NewSource(seed)
	return &CrossEntropy[S, A]{
		Elite: elite, M: m, Iters: iters, EvalPeriod: evalPeriod,
		source: source, rand: rand.New(source),
	}
}

func (c *CrossEntropy[S, A]) ensureInit(ag agent.ParamAgent[S, A]) {
	if c.mean != nil {
		return
	}
	c.mean = ag.GetParams()
	c.stddev = make([]float64, len(c.mean))
	for i := range c.stddev {
		c.stddev[i] = c.rand.Float64()
	}
}

type scoredParams struct {
	params []float64
	score  float64
}

// Train runs Iters generations of the cross-entropy method against e,
// leaving ag installed with the final generation's refit mean.
func (c *CrossEntropy[S, A]) Train(ag agent.ParamAgent[S, A], e env.Environment[S, A], budget period.TimePeriod) {
	c.ensureInit(ag)

	for iter := 0; iter < c.Iters && !budget.IsNone(); iter++ {
		d := len(c.mean)
		samples := make([]scoredParams, c.M)
		for i := 0; i < c.M; i++ {
			params := make([]float64, d)
			for j := 0; j < d; j++ {
				params[j] = distuv.Normal{Mu: c.mean[j], Sigma: c.stddev[j], Src: c.source}.Rand()
			}
			ag.SetParams(params)
			samples[i] = scoredParams{params: params, score: evaluateReturn(ag, e, c.EvalPeriod)}
		}

		sort.Slice(samples, func(i, j int) bool { return samples[i].score > samples[j].score })
		numElite := int(c.Elite * float64(c.M))
		if numElite < 1 {
			numElite = 1
		}
		elite := samples[:numElite]

		newMean := make([]float64, d)
		newStd := make([]float64, d)
		for j := 0; j < d; j++ {
			col := make([]float64, len(elite))
			for i, s := range elite {
				col[i] = s.params[j]
			}
			mean, variance := stat.MeanVariance(col)
			newMean[j] = mean
			newStd[j] = math.Sqrt(variance)
		}
		c.mean, c.stddev = newMean, newStd
		ag.SetParams(c.mean)

		budget = budget.Dec(true)
	}
}

// evaluateReturn installs nothing itself (params are already installed
// by the caller) and rolls ag out against e for exactly period, summing
// the reward earned across every episode in that budget.
func evaluateReturn[S, A any](ag agent.Agent[S, A], e env.Environment[S, A], p period.TimePeriod) float64 {
	total := 0.0
	for !p.IsNone() {
		obs := e.Reset()
		s := obs.State
		done := false
		for !done {
			a := ag.GetAction(s)
			next := e.Step(a)
			total += next.Reward
			s = next.State
			done = next.Done
			p = p.Dec(done)
			if p.IsNone() {
				return total
			}
		}
	}
	return total
}
