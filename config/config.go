// Package config loads per-algorithm hyperparameters from a YAML file,
// keeping magic constants (gamma, alpha, epsilon, population sizes,
// iteration counts...) out of Go source.
package config

import (
	"os"

	"rlcore/period"

	"gopkg.in/yaml.v3"
)

// TrainingConfig holds the hyperparameters for one trainer invocation;
// Algorithm names the trainer (e.g. "qlearner", "cem").
type TrainingConfig struct {
	Algorithm   string             `yaml:"algorithm"`
	TimeBudget  BudgetConfig       `yaml:"timeBudget"`
	HyperParams map[string]float64 `yaml:"hyperParams"`
}

// BudgetConfig mirrors a period.TimePeriod in a serializable shape: one
// of Episodes or Timesteps should be set (a zero value means unset).
type BudgetConfig struct {
	Episodes  int `yaml:"episodes"`
	Timesteps int `yaml:"timesteps"`
}

// TimePeriod converts a BudgetConfig into a period.TimePeriod, OR-ing
// both fields together when both are set so that whichever is exhausted
// first ends training.
func (b BudgetConfig) TimePeriod() period.TimePeriod {
	switch {
	case b.Episodes > 0 && b.Timesteps > 0:
		return period.Or(period.Episodes(b.Episodes), period.Timesteps(b.Timesteps))
	case b.Episodes > 0:
		return period.Episodes(b.Episodes)
	case b.Timesteps > 0:
		return period.Timesteps(b.Timesteps)
	default:
		return period.Episodes(0)
	}
}

// Load reads and parses a YAML training configuration from path.
func Load(path string) (*TrainingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg TrainingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetOrDefault returns the named hyperparameter, or defaultVal if it is
// not present in the loaded configuration.
func (c *TrainingConfig) GetOrDefault(name string, defaultVal float64) float64 {
	if v, ok := c.HyperParams[name]; ok {
		return v
	}
	return defaultVal
}
