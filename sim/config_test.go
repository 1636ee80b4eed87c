package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		substr string
	}{
		{"zero servers", func(c *Config) { c.ServerCount = 0 }, "server count"},
		{"negative servers", func(c *Config) { c.ServerCount = -3 }, "server count"},
		{"zero horizon", func(c *Config) { c.Horizon = 0 }, "horizon"},
		{"negative horizon", func(c *Config) { c.Horizon = -1 }, "horizon"},
		{"infinite horizon", func(c *Config) { c.Horizon = math.Inf(1) }, "horizon"},
		{"zero rate", func(c *Config) { c.ArrivalRate = 0 }, "arrival rate"},
		{"NaN rate", func(c *Config) { c.ArrivalRate = math.NaN() }, "arrival rate"},
		{"negative stddev", func(c *Config) { c.ServiceStdDev = -0.5 }, "stddev"},
		{"NaN mean", func(c *Config) { c.ServiceMean = math.NaN() }, "service mean"},
		{"unknown policy", func(c *Config) { c.Policy = "weighted" }, "unknown policy"},
		{"empty policy", func(c *Config) { c.Policy = "" }, "unknown policy"},
		{"unknown trace level", func(c *Config) { c.TraceLevel = "verbose" }, "trace level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "error should wrap ErrInvalidConfig: %v", err)
			assert.Contains(t, err.Error(), tt.substr)
		})
	}
}

func TestConfig_Validate_ZeroStdDevAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServiceStdDev = 0
	assert.NoError(t, cfg.Validate())
}
