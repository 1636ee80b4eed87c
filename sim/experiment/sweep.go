// Package experiment runs grids of simulations over dispatch policies,
// arrival rates and server counts, and exports their summaries.
package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// SweepConfig describes a policy × arrival-rate × server-count grid.
// Nil pointer fields mean "not set in YAML" and fall back to sim.DefaultConfig.
type SweepConfig struct {
	Policies      []string  `yaml:"policies"`
	ArrivalRates  []float64 `yaml:"arrival_rates"`
	ServerCounts  []int     `yaml:"server_counts"`
	Horizon       float64   `yaml:"horizon"`
	Seed          int64     `yaml:"seed"`
	ServiceMean   *float64  `yaml:"service_mean"`
	ServiceStdDev *float64  `yaml:"service_std_dev"`
	Workers       int       `yaml:"workers"` // concurrent runs; 0 or 1 means sequential
}

// DefaultSweepConfig returns the classic grid: every policy, λ ∈ {0.5, 1, 2},
// N ∈ {2, 4, 6}, horizon 1000.
func DefaultSweepConfig() *SweepConfig {
	return &SweepConfig{
		Policies:     []string{sim.PolicyRoundRobin, sim.PolicyLeastLoaded, sim.PolicyRandom},
		ArrivalRates: []float64{0.5, 1, 2},
		ServerCounts: []int{2, 4, 6},
		Horizon:      1000,
		Seed:         42,
		Workers:      1,
	}
}

// LoadSweepConfig reads a YAML sweep file. Keys absent from the file keep
// their DefaultSweepConfig values.
func LoadSweepConfig(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep config: %w", err)
	}
	cfg := DefaultSweepConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing sweep config: %w", err)
	}
	return cfg, nil
}

// Validate checks the grid axes and that every expanded run is a valid sim.Config.
func (c *SweepConfig) Validate() error {
	if len(c.Policies) == 0 || len(c.ArrivalRates) == 0 || len(c.ServerCounts) == 0 {
		return fmt.Errorf("%w: sweep needs at least one policy, arrival rate and server count", sim.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative, got %d", sim.ErrInvalidConfig, c.Workers)
	}
	for _, cfg := range c.Expand() {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("sweep point policy=%s rate=%v servers=%d: %w",
				cfg.Policy, cfg.ArrivalRate, cfg.ServerCount, err)
		}
	}
	return nil
}

// Expand lists the runs in grid order: policy, then arrival rate, then server count.
// Every run shares the sweep seed so all policies face the same traffic.
func (c *SweepConfig) Expand() []sim.Config {
	base := sim.DefaultConfig()
	base.Horizon = c.Horizon
	base.Seed = c.Seed
	if c.ServiceMean != nil {
		base.ServiceMean = *c.ServiceMean
	}
	if c.ServiceStdDev != nil {
		base.ServiceStdDev = *c.ServiceStdDev
	}

	configs := make([]sim.Config, 0, len(c.Policies)*len(c.ArrivalRates)*len(c.ServerCounts))
	for _, policy := range c.Policies {
		for _, rate := range c.ArrivalRates {
			for _, n := range c.ServerCounts {
				cfg := base
				cfg.Policy = policy
				cfg.ArrivalRate = rate
				cfg.ServerCount = n
				configs = append(configs, cfg)
			}
		}
	}
	return configs
}
