// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dispatch-sim/dispatch-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, server state, and the event loop.
// A Simulator owns its servers and random streams exclusively; it runs on one
// goroutine and each handler completes before the next event is popped.
type Simulator struct {
	Clock   float64
	Horizon float64
	// Servers is indexed by server ID.
	Servers []*Server
	Policy  DispatchPolicy
	// Records holds one entry per dispatched request, in arrival order.
	Records []RequestRecord
	// Trace is nil when tracing is disabled.
	Trace *trace.SimulationTrace

	config    Config
	queue     *EventHeap
	rng       *PartitionedRNG
	arrivals  *ArrivalProcess
	service   *ServiceProcess
	processed int
}

// NewSimulator validates cfg and builds a simulator with idle servers and the
// first arrival already scheduled. No event is scheduled when cfg is invalid.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	policy, err := NewDispatchPolicy(cfg.Policy, rng.ForSubsystem(SubsystemDispatch))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.ServiceStdDev >= cfg.ServiceMean {
		logrus.Warnf("service stddev %.3f >= mean %.3f; many durations will be clamped to 0",
			cfg.ServiceStdDev, cfg.ServiceMean)
	}

	s := &Simulator{
		Clock:   0,
		Horizon: cfg.Horizon,
		Servers: NewServers(cfg.ServerCount),
		Policy:  policy,
		Records: make([]RequestRecord, 0),
		config:  cfg,
		queue:   NewEventHeap(),
		rng:     rng,
		arrivals: NewArrivalProcess(
			NewExponentialGapSampler(cfg.ArrivalRate),
			rng.ForSubsystem(SubsystemArrival),
			cfg.Horizon,
		),
		service: NewServiceProcess(
			NewNormalDurationSampler(cfg.ServiceMean, cfg.ServiceStdDev),
			rng.ForSubsystem(SubsystemService),
		),
	}
	if cfg.TraceLevel.Enabled() {
		s.Trace = trace.NewSimulationTrace(cfg.TraceLevel)
	}

	s.scheduleNextArrival()
	return s, nil
}

// Config returns the configuration the simulator was built from.
func (sim *Simulator) Config() Config {
	return sim.config
}

// Schedule pushes an event into the simulator's event queue.
func (sim *Simulator) Schedule(ev Event) {
	sim.queue.Schedule(ev)
}

// Pending returns the number of events waiting in the queue.
func (sim *Simulator) Pending() int {
	return sim.queue.Len()
}

// EventsProcessed returns how many events have been executed so far.
func (sim *Simulator) EventsProcessed() int {
	return sim.processed
}

// Step processes the earliest pending event. It returns false, without
// executing anything, when the queue is empty or the earliest event lies
// beyond the horizon; such an event is discarded.
func (sim *Simulator) Step() bool {
	ev := sim.queue.PopNext()
	if ev == nil {
		return false
	}
	if ev.Timestamp() > sim.Horizon {
		logrus.Debugf("[t=%.4f] Discarding %s beyond horizon %.4f (%d left in queue)",
			ev.Timestamp(), ev.Kind(), sim.Horizon, sim.Pending())
		return false
	}
	if ev.Timestamp() < sim.Clock {
		logrus.Panicf("event %s at t=%.6f precedes clock %.6f", ev.Kind(), ev.Timestamp(), sim.Clock)
	}

	sim.Clock = ev.Timestamp()
	logrus.Debugf("[t=%.4f] Executing %s", sim.Clock, ev.Kind())
	ev.Execute(sim)
	sim.processed++
	return true
}

// Run processes events until the queue drains or the next event lies beyond
// the horizon, then returns the collected result. Calling Run again returns
// the result for the same final state.
func (sim *Simulator) Run() *Result {
	logrus.Infof("Starting simulation: policy=%s servers=%d rate=%.3f horizon=%.1f seed=%d",
		sim.Policy.Name(), len(sim.Servers), sim.config.ArrivalRate, sim.Horizon, sim.config.Seed)

	for sim.Step() {
	}

	result := sim.Result()
	logrus.Infof("[t=%.4f] Simulation ended: %d requests, %d events, %d in flight",
		sim.Clock, result.TotalRequests, sim.processed, result.Metrics.InFlight)
	return result
}

// Result summarizes the current state. It does not advance the simulation.
func (sim *Simulator) Result() *Result {
	arrivals := make([]float64, len(sim.Records))
	durations := make([]float64, len(sim.Records))
	for i, r := range sim.Records {
		arrivals[i] = r.ArrivalTime
		durations[i] = r.ServiceDuration
	}
	metrics := CollectMetrics(sim.Servers, sim.Horizon, arrivals, durations)
	return &Result{
		Config:                sim.Config(),
		PerServerUtilization:  metrics.Utilization,
		PerServerMeanDuration: metrics.MeanDuration,
		TotalRequests:         metrics.TotalRequests,
		ArrivalTimestamps:     arrivals,
		ServiceDurations:      durations,
		Metrics:               metrics,
		EventsProcessed:       sim.EventsProcessed(),
		EndClock:              sim.Clock,
		Trace:                 sim.Trace,
	}
}

func (sim *Simulator) scheduleNextArrival() {
	if at, id, ok := sim.arrivals.Next(); ok {
		sim.Schedule(NewArrivalEvent(at, id))
	}
}

// handleArrival dispatches the request, draws its duration and schedules its departure.
func (sim *Simulator) handleArrival(e *ArrivalEvent) {
	server := sim.Policy.Select(sim.Servers, e.RequestID)
	if sim.Trace != nil {
		sim.Trace.RecordDispatch(trace.DispatchRecord{
			RequestID: e.RequestID,
			Clock:     sim.Clock,
			ServerID:  server.ID,
			Policy:    sim.Policy.Name(),
			Loads:     sim.loads(),
		})
	}
	server.Assign(sim.Clock)

	duration := sim.service.Draw()
	sim.Records = append(sim.Records, RequestRecord{
		ID:              e.RequestID,
		ArrivalTime:     sim.Clock,
		ServiceDuration: duration,
		ServerID:        server.ID,
	})
	logrus.Debugf("<< Arrival: request %d → server %d (load=%d), duration %.4f",
		e.RequestID, server.ID, server.Load, duration)

	sim.Schedule(NewDepartureEvent(sim.Clock+duration, e.RequestID, server.ID, duration))
	sim.scheduleNextArrival()
	sim.recordEvent(e.Kind(), e.RequestID, server.ID)
}

// handleDeparture releases the server. A departure without a matching
// assignment is an engine bug and panics.
func (sim *Simulator) handleDeparture(e *DepartureEvent) {
	if e.ServerID < 0 || e.ServerID >= len(sim.Servers) {
		logrus.Panicf("departure of request %d references unknown server %d", e.RequestID, e.ServerID)
	}
	server := sim.Servers[e.ServerID]
	if err := sim.service.Complete(server, sim.Clock, e.Duration); err != nil {
		logrus.Panicf("departure of request %d: %v", e.RequestID, err)
	}
	logrus.Debugf(">> Departure: request %d from server %d (load=%d)", e.RequestID, server.ID, server.Load)
	sim.recordEvent(e.Kind(), e.RequestID, server.ID)
}

func (sim *Simulator) recordEvent(kind EventKind, requestID, serverID int) {
	if sim.Trace == nil || sim.Trace.Level != trace.TraceLevelEvents {
		return
	}
	sim.Trace.RecordEvent(trace.EventRecord{
		Clock:     sim.Clock,
		Kind:      string(kind),
		RequestID: requestID,
		ServerID:  serverID,
		Loads:     sim.loads(),
	})
}

func (sim *Simulator) loads() []int {
	loads := make([]int, len(sim.Servers))
	for i, s := range sim.Servers {
		loads[i] = s.Load
	}
	return loads
}
