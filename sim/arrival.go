package sim

import "math/rand"

// ArrivalProcess generates request arrivals as an explicit state machine.
// The engine polls Next on demand; the process never schedules events itself.
// Once the cursor passes the horizon the process is exhausted and stays so.
type ArrivalProcess struct {
	sampler   GapSampler
	rng       *rand.Rand
	horizon   float64
	cursor    float64 // timestamp of the last generated arrival
	counter   int     // ID of the next request
	exhausted bool
}

// NewArrivalProcess creates an arrival process starting at time 0.
func NewArrivalProcess(sampler GapSampler, rng *rand.Rand, horizon float64) *ArrivalProcess {
	return &ArrivalProcess{sampler: sampler, rng: rng, horizon: horizon}
}

// Next advances the cursor by one gap and returns the arrival time and request ID.
// ok is false once the cursor exceeds the horizon.
func (a *ArrivalProcess) Next() (at float64, id int, ok bool) {
	if a.exhausted {
		return 0, 0, false
	}
	a.cursor += a.sampler.SampleGap(a.rng)
	if a.cursor > a.horizon {
		a.exhausted = true
		return 0, 0, false
	}
	id = a.counter
	a.counter++
	return a.cursor, id, true
}

// Generated returns the number of arrivals produced so far.
func (a *ArrivalProcess) Generated() int {
	return a.counter
}

// Exhausted reports whether the cursor has passed the horizon.
func (a *ArrivalProcess) Exhausted() bool {
	return a.exhausted
}
