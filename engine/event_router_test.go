package engine

import (
	"reflect"
	"testing"
)

type recordingHandler struct {
	types  []EventType
	got    []EventType
	onEmit func(ev Event)
}

func (h *recordingHandler) HandleEvent(ev Event) {
	h.got = append(h.got, ev.Type)
	if h.onEmit != nil {
		h.onEmit(ev)
	}
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestEventRouterDispatchOrder(t *testing.T) {
	r := NewEventRouter()
	all := &recordingHandler{types: []EventType{EventScore, EventPhase, EventFoodEaten}}
	scoreOnly := &recordingHandler{types: []EventType{EventScore}}
	r.Register(all)
	r.Register(scoreOnly)

	r.Emit(Event{Type: EventFoodEaten})
	r.Emit(Event{Type: EventScore})
	r.Emit(Event{Type: EventSessionStart})
	if r.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", r.Pending())
	}

	r.DispatchAll()
	if want := []EventType{EventFoodEaten, EventScore}; !reflect.DeepEqual(all.got, want) {
		t.Errorf("all handler got %v, want %v", all.got, want)
	}
	if want := []EventType{EventScore}; !reflect.DeepEqual(scoreOnly.got, want) {
		t.Errorf("score handler got %v, want %v", scoreOnly.got, want)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() after dispatch = %d, want 0", r.Pending())
	}
	if r.HandlerCount(EventScore) != 2 {
		t.Errorf("HandlerCount(Score) = %d, want 2", r.HandlerCount(EventScore))
	}
}

func TestEventRouterChainedEmit(t *testing.T) {
	r := NewEventRouter()
	phase := &recordingHandler{types: []EventType{EventPhase}}
	chain := &recordingHandler{types: []EventType{EventScore}}
	chain.onEmit = func(Event) { r.Emit(Event{Type: EventPhase}) }
	r.Register(phase)
	r.Register(chain)

	r.Emit(Event{Type: EventScore})
	r.DispatchAll()
	if len(phase.got) != 1 {
		t.Errorf("chained event delivered %d times, want 1", len(phase.got))
	}
}
