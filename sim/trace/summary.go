package trace

import "math"

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches    int
	UniqueTargets      int
	TargetDistribution map[int]int // server ID → count of requests dispatched
	EventsProcessed    int
	MaxLoad            int  // highest per-server load seen after any event
	MinLoad            int  // lowest per-server load seen after any event
	ClockMonotonic     bool // event clocks never decreased
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		TargetDistribution: make(map[int]int),
		ClockMonotonic:     true,
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.TargetDistribution[d.ServerID]++
	}
	summary.UniqueTargets = len(summary.TargetDistribution)

	summary.EventsProcessed = len(st.Events)
	if len(st.Events) == 0 {
		return summary
	}
	summary.MinLoad = math.MaxInt
	prev := math.Inf(-1)
	for _, e := range st.Events {
		if e.Clock < prev {
			summary.ClockMonotonic = false
		}
		prev = e.Clock
		for _, l := range e.Loads {
			summary.MaxLoad = max(summary.MaxLoad, l)
			summary.MinLoad = min(summary.MinLoad, l)
		}
	}
	return summary
}
