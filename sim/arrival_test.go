package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedGap returns the same gap every draw.
type fixedGap float64

func (g fixedGap) SampleGap(*rand.Rand) float64 { return float64(g) }

func TestArrivalProcess_StopsAtHorizon(t *testing.T) {
	// GIVEN gaps of 3 and a horizon of 10
	a := NewArrivalProcess(fixedGap(3), nil, 10)

	// WHEN polled until exhausted
	var times []float64
	var ids []int
	for {
		at, id, ok := a.Next()
		if !ok {
			break
		}
		times = append(times, at)
		ids = append(ids, id)
	}

	// THEN arrivals at 3, 6, 9 with sequential IDs; 12 is past the horizon
	assert.Equal(t, []float64{3, 6, 9}, times)
	assert.Equal(t, []int{0, 1, 2}, ids)
	assert.Equal(t, 3, a.Generated())
	assert.True(t, a.Exhausted())

	_, _, ok := a.Next()
	assert.False(t, ok, "exhausted process stays exhausted")
}

func TestArrivalProcess_ArrivalExactlyAtHorizonIsKept(t *testing.T) {
	a := NewArrivalProcess(fixedGap(5), nil, 10)
	a.Next()
	at, _, ok := a.Next()
	assert.True(t, ok)
	assert.Equal(t, 10.0, at)
}

func TestArrivalProcess_RateDrivesCount(t *testing.T) {
	tests := []struct {
		rate float64
		want float64
	}{
		{0.5, 500},
		{1, 1000},
		{2, 2000},
	}
	for _, tt := range tests {
		a := NewArrivalProcess(NewExponentialGapSampler(tt.rate), rand.New(rand.NewSource(3)), 1000)
		for {
			if _, _, ok := a.Next(); !ok {
				break
			}
		}
		// ±5 standard deviations of Poisson(want)
		assert.InDelta(t, tt.want, float64(a.Generated()), 5*math.Sqrt(tt.want), "rate %v", tt.rate)
	}
}
