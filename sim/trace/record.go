// Package trace provides per-run recording of dispatch decisions and processed events.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures a single dispatch policy decision.
type DispatchRecord struct {
	RequestID int     `yaml:"request_id"`
	Clock     float64 `yaml:"clock"`
	ServerID  int     `yaml:"server_id"`
	Policy    string  `yaml:"policy"`
	Loads     []int   `yaml:"loads"` // per-server load observed by the policy, before assignment
}

// EventRecord captures the state right after one event handler completed.
type EventRecord struct {
	Clock     float64 `yaml:"clock"`
	Kind      string  `yaml:"kind"`
	RequestID int     `yaml:"request_id"`
	ServerID  int     `yaml:"server_id"`
	Loads     []int   `yaml:"loads"`
}
