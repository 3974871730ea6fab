package events

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeCalculation EventType = "calculation"
	EventTypeSimulation  EventType = "simulation"
	EventTypeCommand     EventType = "command"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// Calculation outcomes carried by CalculationEvent.
const (
	OutcomeExact     = "exact"
	OutcomeOverflow  = "overflow"
	OutcomeUndefined = "undefined"
	OutcomeError     = "error"
)

// CalculationEvent is emitted after every counting or probability
// calculation.
type CalculationEvent struct {
	Operation string
	Outcome   string
	Examples  int
	Duration  time.Duration
}

func (e CalculationEvent) Type() EventType {
	return EventTypeCalculation
}

// SimulationEvent is emitted after a simulation run.
type SimulationEvent struct {
	Kind     string
	Trials   int
	Duration time.Duration
}

func (e SimulationEvent) Type() EventType {
	return EventTypeSimulation
}

// CommandEvent is emitted when a user-facing command finishes.
type CommandEvent struct {
	Surface string // "discord" or "cli"
	Command string
	Failed  bool
}

func (e CommandEvent) Type() EventType {
	return EventTypeCommand
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Publisher is the subset of Bus the services depend on.
type Publisher interface {
	Emit(ctx context.Context, event Event)
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit calls every handler registered for the event's type, in
// subscription order, on the caller's goroutine. A panicking handler is
// logged and does not stop the others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	for i, handler := range handlers {
		b.call(ctx, event, handler, i)
	}
}

func (b *Bus) call(ctx context.Context, event Event, h Handler, handlerIndex int) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"eventType":    event.Type(),
				"handlerIndex": handlerIndex,
				"panic":        r,
			}).Error("Event handler panicked")
		}
	}()
	h(ctx, event)
}

// Recorder collects emitted events, for tests and for the CLI summary.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(_ context.Context, event Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
