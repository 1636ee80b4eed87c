package sim

import "math/rand"

// ServiceProcess draws service durations and applies departures to servers.
type ServiceProcess struct {
	sampler DurationSampler
	rng     *rand.Rand
}

// NewServiceProcess creates a service process drawing from rng.
func NewServiceProcess(sampler DurationSampler, rng *rand.Rand) *ServiceProcess {
	return &ServiceProcess{sampler: sampler, rng: rng}
}

// Draw returns the next service duration (>= 0).
func (p *ServiceProcess) Draw() float64 {
	return p.sampler.SampleDuration(p.rng)
}

// Complete releases server at time now for a request that took duration.
// The error wraps ErrLoadUnderflow when no matching assignment exists.
func (p *ServiceProcess) Complete(server *Server, now, duration float64) error {
	return server.Release(now, duration)
}
