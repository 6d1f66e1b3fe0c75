package event

// Handler processes specific event types within a context T
type Handler[T any] interface {
	// HandleEvent is called synchronously during dispatch
	HandleEvent(ctx T, ev GameEvent)

	// EventTypes returns the types this handler is registered for
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc[T any] struct {
	Types []EventType
	Fn    func(ctx T, ev GameEvent)
}

func (h HandlerFunc[T]) HandleEvent(ctx T, ev GameEvent) { h.Fn(ctx, ev) }
func (h HandlerFunc[T]) EventTypes() []EventType        { return h.Types }

// Router dispatches queued events to registered handlers
// Dispatch is single-threaded; handlers run in registration order
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *EventQueue
}

// NewRouter creates a router attached to queue
func NewRouter[T any](queue *EventQueue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds handler for each of its declared types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue in FIFO order and returns the dispatched events
// Events pushed by handlers during dispatch are left for the next call
func (r *Router[T]) DispatchAll(ctx T) []GameEvent {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ctx, ev)
		}
	}
	return events
}

// HandlerCount returns the number of handlers registered for t
func (r *Router[T]) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
