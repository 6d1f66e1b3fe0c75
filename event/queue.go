package event

import (
	"sync"
)

// EventQueue buffers events produced during a tick
// Producers Push from any goroutine; the simulation is the single consumer
type EventQueue struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewEventQueue creates a queue with the given initial capacity
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, capacity)}
}

// Push appends an event in FIFO order
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Emit is Push with the fields spelled out
func (q *EventQueue) Emit(t EventType, payload any, tick int64) {
	q.Push(GameEvent{Type: t, Payload: payload, Tick: tick})
}

// Consume returns pending events and empties the queue
// Returns nil when nothing is pending
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
