package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

func smallSweep(workers int) *SweepConfig {
	cfg := DefaultSweepConfig()
	cfg.ArrivalRates = []float64{0.5, 2}
	cfg.ServerCounts = []int{1, 3}
	cfg.Horizon = 100
	cfg.Workers = workers
	return cfg
}

func TestRun_OutcomesInGridOrder(t *testing.T) {
	cfg := smallSweep(1)
	var seen []int

	outcomes, err := Run(cfg, func(o Outcome) { seen = append(seen, o.Index) })

	require.NoError(t, err)
	require.Len(t, outcomes, 12)
	for i, o := range outcomes {
		assert.Equal(t, i, o.Index)
		assert.Equal(t, cfg.Expand()[i], o.Config)
		require.NotNil(t, o.Result)
		assert.Equal(t, o.Result.TotalRequests, sim.TotalOf(o.Result.Metrics.RequestCounts))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, seen)
}

func TestRun_ConcurrentMatchesSequential(t *testing.T) {
	seq, err := Run(smallSweep(1), nil)
	require.NoError(t, err)
	par, err := Run(smallSweep(4), nil)
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Result.ArrivalTimestamps, par[i].Result.ArrivalTimestamps)
		assert.Equal(t, seq[i].Result.Metrics.RequestCounts, par[i].Result.Metrics.RequestCounts)
	}
}

func TestRun_InvalidSweepRunsNothing(t *testing.T) {
	cfg := smallSweep(1)
	cfg.Horizon = 0
	called := false

	outcomes, err := Run(cfg, func(Outcome) { called = true })

	assert.Error(t, err)
	assert.Nil(t, outcomes)
	assert.False(t, called)
}

func TestRun_SamePolicyTrafficAcrossPolicies(t *testing.T) {
	cfg := smallSweep(2)
	cfg.ArrivalRates = []float64{1}
	cfg.ServerCounts = []int{2}

	outcomes, err := Run(cfg, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for _, o := range outcomes[1:] {
		assert.Equal(t, outcomes[0].Result.ArrivalTimestamps, o.Result.ArrivalTimestamps, o.Config.Policy)
	}
}
