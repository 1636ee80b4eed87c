package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveResults_WritesOneEntryPerRun(t *testing.T) {
	outcomes, err := Run(smallSweep(1), nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "results.yaml")

	require.NoError(t, SaveResults(path, outcomes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Runs []Summary `yaml:"runs"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded.Runs, len(outcomes))

	first := decoded.Runs[0]
	assert.Equal(t, outcomes[0].Config.Policy, first.Policy)
	assert.Equal(t, outcomes[0].Result.TotalRequests, first.TotalRequests)
	assert.Len(t, first.Utilization, outcomes[0].Config.ServerCount)
}

func TestSaveResults_NoDataMeanIsNull(t *testing.T) {
	// GIVEN service durations far longer than the horizon
	mean, sd := 100.0, 0.0
	cfg := smallSweep(1)
	cfg.Policies = []string{"round-robin"}
	cfg.ArrivalRates = []float64{2}
	cfg.ServerCounts = []int{3}
	cfg.Horizon = 10
	cfg.ServiceMean, cfg.ServiceStdDev = &mean, &sd
	outcomes, err := Run(cfg, nil)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "results.yaml")

	// WHEN the results are saved and read back
	require.NoError(t, SaveResults(path, outcomes))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Runs []Summary `yaml:"runs"`
	}
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	// THEN every per-server mean is null rather than zero
	require.Len(t, decoded.Runs, 1)
	assert.Equal(t, 0, decoded.Runs[0].CompletedRequests)
	require.Len(t, decoded.Runs[0].MeanDuration, 3)
	for i, m := range decoded.Runs[0].MeanDuration {
		assert.Nil(t, m, "server %d", i)
	}
	assert.Nil(t, decoded.Runs[0].Completed)
}

func TestSaveResults_BadPath(t *testing.T) {
	err := SaveResults(filepath.Join(t.TempDir(), "missing", "dir", "out.yaml"), nil)
	assert.ErrorContains(t, err, "writing sweep results")
}
