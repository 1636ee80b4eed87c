package sim

import (
	"math"
	"math/rand"
)

// GapSampler draws inter-arrival gaps in simulated time units.
type GapSampler interface {
	// SampleGap returns a gap >= 0.
	SampleGap(rng *rand.Rand) float64
}

// DurationSampler draws service durations in simulated time units.
type DurationSampler interface {
	// SampleDuration returns a duration >= 0.
	SampleDuration(rng *rand.Rand) float64
}

// ExponentialGapSampler produces exponentially-distributed gaps with rate λ,
// i.e. a Poisson arrival process with mean gap 1/λ.
type ExponentialGapSampler struct {
	rate float64
}

// NewExponentialGapSampler returns a sampler with the given arrival rate.
// The rate must be positive; Config.Validate enforces this before construction.
func NewExponentialGapSampler(rate float64) *ExponentialGapSampler {
	return &ExponentialGapSampler{rate: rate}
}

func (s *ExponentialGapSampler) SampleGap(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / s.rate
}

// Rate returns λ.
func (s *ExponentialGapSampler) Rate() float64 {
	return s.rate
}

// NormalDurationSampler produces Normal(mean, stdDev) durations clamped at zero.
// A negative draw becomes 0 rather than being resampled, so the number of
// draws per request is always exactly one and seeded runs stay aligned.
type NormalDurationSampler struct {
	mean, stdDev float64
}

// NewNormalDurationSampler returns a clamped normal sampler.
func NewNormalDurationSampler(mean, stdDev float64) *NormalDurationSampler {
	return &NormalDurationSampler{mean: mean, stdDev: stdDev}
}

func (s *NormalDurationSampler) SampleDuration(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.stdDev + s.mean
	return math.Max(0, val)
}
