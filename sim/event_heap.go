package sim

import "container/heap"

type scheduledEvent struct {
	Event
	seq uint64
}

// EventHeap implements a priority queue with deterministic ordering.
// Ordering: timestamp → insertion sequence.
// The sequence counter is per heap, so two runs never share tie-break state.
type EventHeap struct {
	events  []scheduledEvent
	nextSeq uint64
}

// NewEventHeap creates a new event heap
func NewEventHeap() *EventHeap {
	h := &EventHeap{
		events: make([]scheduledEvent, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface
func (h *EventHeap) Push(x interface{}) {
	h.events = append(h.events, x.(scheduledEvent))
}

// Pop implements heap.Interface
func (h *EventHeap) Pop() interface{} {
	old := h.events
	n := len(old)
	item := old[n-1]
	old[n-1] = scheduledEvent{}
	h.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the heap in O(log n).
func (h *EventHeap) Schedule(e Event) {
	heap.Push(h, scheduledEvent{Event: e, seq: h.nextSeq})
	h.nextSeq++
}

// PopNext removes and returns the next event
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(scheduledEvent).Event
}

// Peek returns the next event without removing it
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.events[0].Event
}
