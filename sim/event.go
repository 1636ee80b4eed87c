package sim

// EventKind names the handler an event is routed to.
type EventKind string

const (
	EventKindArrival   EventKind = "arrival"
	EventKindDeparture EventKind = "departure"
)

// Event defines the interface for all simulation events.
// Each event has a Timestamp (simulated time units) and an Execute method
// that advances simulation state when invoked. Execute runs to completion
// before the next event is popped.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	Execute(*Simulator)
}

// ArrivalEvent represents a new request entering the system.
type ArrivalEvent struct {
	time      float64
	RequestID int
}

// NewArrivalEvent creates an arrival for request id at time t.
func NewArrivalEvent(t float64, id int) *ArrivalEvent {
	return &ArrivalEvent{time: t, RequestID: id}
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }

func (e *ArrivalEvent) Kind() EventKind { return EventKindArrival }

// Execute dispatches the request and schedules its departure.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	sim.handleArrival(e)
}

// DepartureEvent represents a request finishing service on a server.
type DepartureEvent struct {
	time      float64
	RequestID int
	ServerID  int
	Duration  float64 // realized service duration
}

// NewDepartureEvent creates a departure of request id from server at time t.
func NewDepartureEvent(t float64, id, server int, duration float64) *DepartureEvent {
	return &DepartureEvent{time: t, RequestID: id, ServerID: server, Duration: duration}
}

func (e *DepartureEvent) Timestamp() float64 { return e.time }

func (e *DepartureEvent) Kind() EventKind { return EventKindDeparture }

// Execute releases the server.
func (e *DepartureEvent) Execute(sim *Simulator) {
	sim.handleDeparture(e)
}
