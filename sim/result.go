package sim

import "github.com/dispatch-sim/dispatch-sim/sim/trace"

// Result is the in-memory output of one run.
type Result struct {
	Config Config `yaml:"config"`

	PerServerUtilization  []float64  `yaml:"per_server_utilization"`
	PerServerMeanDuration []*float64 `yaml:"per_server_mean_duration"` // nil entry = no data
	TotalRequests         int        `yaml:"total_requests"`
	ArrivalTimestamps     []float64  `yaml:"arrival_timestamps,omitempty"`
	ServiceDurations      []float64  `yaml:"service_durations,omitempty"`

	Metrics         *Metrics               `yaml:"metrics"`
	EventsProcessed int                    `yaml:"events_processed"`
	EndClock        float64                `yaml:"end_clock"`
	Trace           *trace.SimulationTrace `yaml:"trace,omitempty"`
}

// Simulate builds a simulator from cfg and runs it to the horizon.
func Simulate(cfg Config) (*Result, error) {
	s, err := NewSimulator(cfg)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}
