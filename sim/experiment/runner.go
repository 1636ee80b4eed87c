package experiment

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dispatch-sim/dispatch-sim/sim"
)

// Outcome pairs one sweep point with its result.
type Outcome struct {
	Index  int
	Config sim.Config
	Result *sim.Result
}

// Run executes every point of the sweep. Each simulation owns its random
// streams, so points may run concurrently; outcomes are returned in grid order.
// onDone, if non-nil, is called from the caller's goroutine in grid order.
func Run(c *SweepConfig, onDone func(Outcome)) ([]Outcome, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	configs := c.Expand()
	outcomes := make([]Outcome, len(configs))
	errs := make([]error, len(configs))

	workers := max(c.Workers, 1)
	logrus.Infof("Running sweep of %d simulations on %d worker(s)", len(configs), workers)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, cfg := range configs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, cfg sim.Config) {
			defer wg.Done()
			defer func() { <-sem }()
			res, err := sim.Simulate(cfg)
			outcomes[i] = Outcome{Index: i, Config: cfg, Result: res}
			errs[i] = err
		}(i, cfg)
	}
	wg.Wait()

	for i := range outcomes {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if onDone != nil {
			onDone(outcomes[i])
		}
	}
	return outcomes, nil
}
