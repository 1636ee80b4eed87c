package trace

// TraceLevel controls the verbosity of run tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDispatches captures every dispatch decision.
	TraceLevelDispatches TraceLevel = "dispatches"
	// TraceLevelEvents captures dispatch decisions and every processed event.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelDispatches: true,
	TraceLevelEvents:     true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// Enabled reports whether any recording happens at this level.
func (l TraceLevel) Enabled() bool {
	return l == TraceLevelDispatches || l == TraceLevelEvents
}

// SimulationTrace collects records during one simulation run.
type SimulationTrace struct {
	Level      TraceLevel       `yaml:"level"`
	Dispatches []DispatchRecord `yaml:"dispatches"`
	Events     []EventRecord    `yaml:"events,omitempty"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(level TraceLevel) *SimulationTrace {
	return &SimulationTrace{
		Level:      level,
		Dispatches: make([]DispatchRecord, 0),
		Events:     make([]EventRecord, 0),
	}
}

// RecordDispatch appends a dispatch decision record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordEvent appends a processed-event record. No-op below TraceLevelEvents.
func (st *SimulationTrace) RecordEvent(record EventRecord) {
	if st.Level != TraceLevelEvents {
		return
	}
	st.Events = append(st.Events, record)
}
