// Aggregates final server state and raw logs into per-server and run-wide statistics.

package sim

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// DurationSummary describes a set of service durations.
// Response time in this model is the service duration: servers have unbounded
// capacity so requests never wait before service.
type DurationSummary struct {
	Count  int     `yaml:"count"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
	P50    float64 `yaml:"p50"`
	P90    float64 `yaml:"p90"`
	P99    float64 `yaml:"p99"`
	Max    float64 `yaml:"max"`
}

// Metrics aggregates statistics about a finished (or paused) run
// for final reporting. It is computed by CollectMetrics and never mutated.
type Metrics struct {
	Horizon           float64 `yaml:"horizon"`
	TotalRequests     int     `yaml:"total_requests"`     // all generated arrivals
	CompletedRequests int     `yaml:"completed_requests"` // departures processed
	InFlight          int     `yaml:"in_flight"`          // still in service at the end

	RequestCounts []int       `yaml:"request_counts"` // per server, dispatched requests
	Utilization   []float64   `yaml:"utilization"`    // per server, busy time / horizon, in [0, 1]
	ServiceDemand []float64   `yaml:"service_demand"` // per server, Σ completed durations / horizon
	MeanDuration  []*float64  `yaml:"mean_duration"`  // per server; nil means no completions
	Fairness      float64     `yaml:"fairness"`       // Jain index of RequestCounts, in [1/N, 1]

	// Completed summarizes durations of completed requests across all servers; nil if none.
	Completed *DurationSummary `yaml:"completed,omitempty"`
	// MeanInterArrival is the mean gap between consecutive arrivals; 0 with fewer than two.
	MeanInterArrival float64 `yaml:"mean_inter_arrival"`
}

// CollectMetrics reduces final server state, the horizon and the raw arrival
// and duration logs into Metrics. It does not modify its inputs.
func CollectMetrics(servers []*Server, horizon float64, arrivals, durations []float64) *Metrics {
	n := len(servers)
	m := &Metrics{
		Horizon:       horizon,
		TotalRequests: len(arrivals),
		RequestCounts: make([]int, n),
		Utilization:   make([]float64, n),
		ServiceDemand: make([]float64, n),
		MeanDuration:  make([]*float64, n),
	}

	completed := make([]float64, 0, len(durations))
	for i, s := range servers {
		m.RequestCounts[i] = s.Assigned
		m.InFlight += s.Load
		m.CompletedRequests += len(s.CompletedDurations)
		completed = append(completed, s.CompletedDurations...)

		if horizon > 0 {
			m.Utilization[i] = s.BusyTime(horizon) / horizon
			m.ServiceDemand[i] = floatSum(s.CompletedDurations) / horizon
		}
		m.MeanDuration[i] = meanOrNil(s.CompletedDurations)
	}

	m.Fairness = JainFairness(m.RequestCounts)
	m.Completed = SummarizeDurations(completed)
	if len(arrivals) > 1 {
		m.MeanInterArrival = (arrivals[len(arrivals)-1] - arrivals[0]) / float64(len(arrivals)-1)
	}
	return m
}

// SummarizeDurations returns mean, stddev and percentiles of values, or nil if empty.
func SummarizeDurations(values []float64) *DurationSummary {
	if len(values) == 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	summary := &DurationSummary{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:   stat.Quantile(0.90, stat.Empirical, sorted, nil),
		P99:   stat.Quantile(0.99, stat.Empirical, sorted, nil),
		Max:   sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		summary.StdDev = stat.StdDev(sorted, nil)
	}
	return summary
}

// JainFairness returns (Σx)² / (n·Σx²). It is 1 when all counts are equal,
// including the all-zero case, and 1/n when one server takes everything.
func JainFairness(counts []int) float64 {
	if len(counts) == 0 {
		return 1
	}
	var sum, sumSq float64
	for _, c := range counts {
		sum += float64(c)
		sumSq += float64(c) * float64(c)
	}
	if sumSq == 0 {
		return 1
	}
	return sum * sum / (float64(len(counts)) * sumSq)
}

// TotalOf sums a per-server count slice.
func TotalOf(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func meanOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	mean := stat.Mean(values, nil)
	return &mean
}

func floatSum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// FormatOptional renders a possibly-missing value, using "n/a" for nil.
func FormatOptional(v *float64, format func(float64) string) string {
	if v == nil || math.IsNaN(*v) {
		return "n/a"
	}
	return format(*v)
}
