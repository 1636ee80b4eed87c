package sim

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// finishedServer returns a server that served the given [start, end) intervals.
func finishedServer(t *testing.T, id int, intervals ...[2]float64) *Server {
	t.Helper()
	s := &Server{ID: id, CompletedDurations: make([]float64, 0)}
	for _, iv := range intervals {
		s.Assign(iv[0])
		require.NoError(t, s.Release(iv[1], iv[1]-iv[0]))
	}
	return s
}

func TestCollectMetrics_UtilizationAndMeans(t *testing.T) {
	// GIVEN server 0 busy for [0,10) and [20,30), server 1 never used
	servers := []*Server{
		finishedServer(t, 0, [2]float64{0, 10}, [2]float64{20, 30}),
		finishedServer(t, 1),
	}

	// WHEN collected over horizon 100
	m := CollectMetrics(servers, 100, []float64{0, 20}, []float64{10, 10})

	// THEN utilization is the busy fraction
	assert.InDelta(t, 0.2, m.Utilization[0], 1e-12)
	assert.Equal(t, 0.0, m.Utilization[1])
	assert.InDelta(t, 0.2, m.ServiceDemand[0], 1e-12)

	// THEN the idle server reports no data instead of dividing by zero
	require.NotNil(t, m.MeanDuration[0])
	assert.InDelta(t, 10.0, *m.MeanDuration[0], 1e-12)
	assert.Nil(t, m.MeanDuration[1])

	assert.Equal(t, 2, m.TotalRequests)
	assert.Equal(t, 2, m.CompletedRequests)
	assert.Equal(t, 0, m.InFlight)
	assert.Equal(t, []int{2, 0}, m.RequestCounts)
	assert.InDelta(t, 20.0, m.MeanInterArrival, 1e-12)
}

func TestCollectMetrics_TotalCountsAllArrivalsNotJustCompleted(t *testing.T) {
	s := finishedServer(t, 0, [2]float64{1, 2})
	s.Assign(5) // still in service

	m := CollectMetrics([]*Server{s}, 10, []float64{1, 5}, []float64{1, 100})

	assert.Equal(t, 2, m.TotalRequests)
	assert.Equal(t, 1, m.CompletedRequests)
	assert.Equal(t, 1, m.InFlight)
	// busy [1,2) plus the open period [5,10)
	assert.InDelta(t, 0.6, m.Utilization[0], 1e-12)
}

func TestCollectMetrics_ServiceDemandCanExceedOneWhileUtilizationCannot(t *testing.T) {
	// GIVEN three fully overlapping requests on one server
	s := &Server{ID: 0}
	for i := 0; i < 3; i++ {
		s.Assign(0)
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Release(10, 10))
	}

	m := CollectMetrics([]*Server{s}, 10, []float64{0, 0, 0}, []float64{10, 10, 10})

	assert.InDelta(t, 3.0, m.ServiceDemand[0], 1e-12)
	assert.InDelta(t, 1.0, m.Utilization[0], 1e-12)
}

func TestCollectMetrics_DoesNotMutateServers(t *testing.T) {
	s := finishedServer(t, 0, [2]float64{3, 4}, [2]float64{1, 2})
	before := *s
	before.CompletedDurations = slices.Clone(s.CompletedDurations)

	CollectMetrics([]*Server{s}, 10, nil, nil)

	assert.Equal(t, &before, s)
}

func TestSummarizeDurations(t *testing.T) {
	assert.Nil(t, SummarizeDurations(nil))

	values := make([]float64, 100)
	for i := range values {
		values[99-i] = float64(i + 1) // descending on purpose
	}

	s := SummarizeDurations(values)

	require.NotNil(t, s)
	assert.Equal(t, 100, s.Count)
	assert.InDelta(t, 50.5, s.Mean, 1e-12)
	assert.InDelta(t, 50.0, s.P50, 1.0)
	assert.InDelta(t, 90.0, s.P90, 1.0)
	assert.InDelta(t, 99.0, s.P99, 1.0)
	assert.Equal(t, 100.0, s.Max)
	assert.Equal(t, 100.0, values[0], "input must not be reordered")
}

func TestSummarizeDurations_SingleValueHasZeroStdDev(t *testing.T) {
	s := SummarizeDurations([]float64{4.2})
	require.NotNil(t, s)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 4.2, s.P99)
}

func TestJainFairness(t *testing.T) {
	tests := []struct {
		counts []int
		want   float64
	}{
		{[]int{5, 5, 5, 5}, 1.0},
		{[]int{0, 0}, 1.0},
		{[]int{10, 0, 0, 0}, 0.25},
		{[]int{3, 1}, 0.8},
		{nil, 1.0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.counts), func(t *testing.T) {
			assert.InDelta(t, tt.want, JainFairness(tt.counts), 1e-12)
		})
	}
}

func TestFormatOptional(t *testing.T) {
	v := 2.5
	f := func(x float64) string { return fmt.Sprintf("%.1f", x) }
	assert.Equal(t, "2.5", FormatOptional(&v, f))
	assert.Equal(t, "n/a", FormatOptional(nil, f))
}
