package engine

// EventHandler receives routed events
// Score display, phase overlay, audio and logging implement this
type EventHandler interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ev Event)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EventRouter queues events during a frame and dispatches them once per frame
//
// Architecture:
//   - Single-threaded dispatch from the scheduler's frame callback
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order, events in FIFO order
type EventRouter struct {
	handlers map[EventType][]EventHandler
	pending  []Event
}

// NewEventRouter creates an empty router
func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[EventType][]EventHandler),
		pending:  make([]Event, 0, 8),
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Emit queues an event for the next DispatchAll
func (r *EventRouter) Emit(ev Event) {
	r.pending = append(r.pending, ev)
}

// DispatchAll routes and clears all queued events
// Events emitted by handlers during dispatch are delivered in the same call
func (r *EventRouter) DispatchAll() {
	for i := 0; i < len(r.pending); i++ {
		ev := r.pending[i]
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	r.pending = r.pending[:0]
}

// Pending returns the number of queued events
func (r *EventRouter) Pending() int {
	return len(r.pending)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *EventRouter) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
