package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// Summary is the exported view of one sweep point; raw logs are omitted.
type Summary struct {
	Policy            string               `yaml:"policy"`
	ServerCount       int                  `yaml:"server_count"`
	ArrivalRate       float64              `yaml:"arrival_rate"`
	Horizon           float64              `yaml:"horizon"`
	Seed              int64                `yaml:"seed"`
	TotalRequests     int                  `yaml:"total_requests"`
	CompletedRequests int                  `yaml:"completed_requests"`
	RequestCounts     []int                `yaml:"request_counts"`
	Utilization       []float64            `yaml:"utilization"`
	ServiceDemand     []float64            `yaml:"service_demand"`
	MeanDuration      []*float64           `yaml:"mean_duration"`
	Fairness          float64              `yaml:"fairness"`
	Completed         *sim.DurationSummary `yaml:"completed,omitempty"`
}

// Summarize converts outcomes into exportable summaries, preserving order.
func Summarize(outcomes []Outcome) []Summary {
	summaries := make([]Summary, 0, len(outcomes))
	for _, o := range outcomes {
		m := o.Result.Metrics
		summaries = append(summaries, Summary{
			Policy:            o.Config.Policy,
			ServerCount:       o.Config.ServerCount,
			ArrivalRate:       o.Config.ArrivalRate,
			Horizon:           o.Config.Horizon,
			Seed:              o.Config.Seed,
			TotalRequests:     m.TotalRequests,
			CompletedRequests: m.CompletedRequests,
			RequestCounts:     m.RequestCounts,
			Utilization:       m.Utilization,
			ServiceDemand:     m.ServiceDemand,
			MeanDuration:      m.MeanDuration,
			Fairness:          m.Fairness,
			Completed:         m.Completed,
		})
	}
	return summaries
}

// SaveResults writes the outcome summaries to path as YAML.
func SaveResults(path string, outcomes []Outcome) error {
	data, err := yaml.Marshal(struct {
		Runs []Summary `yaml:"runs"`
	}{Runs: Summarize(outcomes)})
	if err != nil {
		return fmt.Errorf("encoding sweep results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing sweep results: %w", err)
	}
	return nil
}
