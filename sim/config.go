package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

// ErrInvalidConfig is wrapped by every configuration error returned from
// Config.Validate and NewSimulator.
var ErrInvalidConfig = errors.New("invalid simulation config")

// Config groups the parameters of a single simulation run.
// Times are in abstract simulated units; ArrivalRate is requests per unit.
type Config struct {
	Policy        string           `yaml:"policy"`
	ServerCount   int              `yaml:"server_count"`
	ArrivalRate   float64          `yaml:"arrival_rate"`    // λ of the Poisson arrival process
	Horizon       float64          `yaml:"horizon"`         // no event after this time is processed
	Seed          int64            `yaml:"seed"`            // master seed for all random streams
	ServiceMean   float64          `yaml:"service_mean"`    // mean of the normal service distribution
	ServiceStdDev float64          `yaml:"service_std_dev"` // stddev of the normal service distribution
	TraceLevel    trace.TraceLevel `yaml:"trace_level"`
}

// DefaultConfig returns a round-robin run over 4 servers with λ=1,
// Normal(5,1) service and a horizon of 1000.
func DefaultConfig() Config {
	return Config{
		Policy:        PolicyRoundRobin,
		ServerCount:   4,
		ArrivalRate:   1.0,
		Horizon:       1000,
		Seed:          42,
		ServiceMean:   5.0,
		ServiceStdDev: 1.0,
		TraceLevel:    trace.TraceLevelNone,
	}
}

// Validate checks every field and returns an error wrapping ErrInvalidConfig
// on the first violation.
func (c Config) Validate() error {
	if !IsValidDispatchPolicy(c.Policy) {
		return fmt.Errorf("%w: unknown policy %q (valid: %v)", ErrInvalidConfig, c.Policy, DispatchPolicyNames())
	}
	if c.ServerCount <= 0 {
		return fmt.Errorf("%w: server count must be positive, got %d", ErrInvalidConfig, c.ServerCount)
	}
	if !isPositiveFinite(c.ArrivalRate) {
		return fmt.Errorf("%w: arrival rate must be positive and finite, got %v", ErrInvalidConfig, c.ArrivalRate)
	}
	if !isPositiveFinite(c.Horizon) {
		return fmt.Errorf("%w: horizon must be positive and finite, got %v", ErrInvalidConfig, c.Horizon)
	}
	if math.IsNaN(c.ServiceMean) || math.IsInf(c.ServiceMean, 0) {
		return fmt.Errorf("%w: service mean must be finite, got %v", ErrInvalidConfig, c.ServiceMean)
	}
	if c.ServiceStdDev < 0 || math.IsNaN(c.ServiceStdDev) || math.IsInf(c.ServiceStdDev, 0) {
		return fmt.Errorf("%w: service stddev must be non-negative and finite, got %v", ErrInvalidConfig, c.ServiceStdDev)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidConfig, c.TraceLevel)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
