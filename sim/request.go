package sim

// RequestRecord is created at arrival and never modified afterwards.
// Records are kept for aggregate statistics only.
type RequestRecord struct {
	ID              int     `yaml:"id"`
	ArrivalTime     float64 `yaml:"arrival_time"`
	ServiceDuration float64 `yaml:"service_duration"`
	ServerID        int     `yaml:"server_id"`
}

// CompletionTime returns when the request leaves its server.
func (r RequestRecord) CompletionTime() float64 {
	return r.ArrivalTime + r.ServiceDuration
}
