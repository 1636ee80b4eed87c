// Package sim provides the discrete-event engine for simulating request
// dispatch across a pool of servers.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: Arrival and departure events and how they execute
//   - event_heap.go: Time-ordered queue with FIFO tie-breaking
//   - simulator.go: The event loop and the arrival/departure handlers
//
// # Architecture
//
// A Simulator owns its servers, its event heap and a PartitionedRNG with one
// stream per subsystem (arrival, service, dispatch). Arrivals come from an
// ArrivalProcess polled one event at a time; each arrival is assigned by a
// DispatchPolicy and scheduled to depart after a ServiceProcess draw.
// Sub-packages build on the engine:
//   - sim/trace/: Decision trace recording
//   - sim/experiment/: Policy × rate × server-count sweeps and YAML export
//
// # Key Interfaces
//
//   - DispatchPolicy: closed set of round-robin, least-loaded and random
//   - GapSampler / DurationSampler: inter-arrival and service distributions
//   - Event: anything the heap can order and the simulator can execute
package sim
