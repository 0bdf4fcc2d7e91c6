package events

import (
	"sync"
	"time"
)

// Handler processes a single event
type Handler func(Event)

// Bus provides event distribution across components.
// Emit never blocks the emitter: events are buffered and fanned out to
// handlers from a dedicated goroutine. When the buffer is full the event is
// dropped rather than stalling the pool's hot path.
type Bus struct {
	events chan Event

	mu       sync.Mutex
	handlers []Handler
	closed   bool

	done chan struct{}
}

// NewBus creates a new event bus with the specified buffer capacity
func NewBus(capacity int) *Bus {
	b := &Bus{
		events: make(chan Event, capacity),
		done:   make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// Subscribe registers a handler for all subsequent events
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Emit publishes an event to all subscribed handlers.
// The event's Time field is stamped here. Emitting on a closed bus is a no-op.
func (b *Bus) Emit(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	e.Time = time.Now()
	select {
	case b.events <- e:
	default:
		// buffer full, drop
	}
}

// Close shuts down the event bus. Events already buffered are delivered
// before Close returns.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.events)
	b.mu.Unlock()

	<-b.done
	return nil
}

func (b *Bus) dispatch() {
	defer close(b.done)
	for e := range b.events {
		b.mu.Lock()
		handlers := make([]Handler, len(b.handlers))
		copy(handlers, b.handlers)
		b.mu.Unlock()

		for _, h := range handlers {
			h(e)
		}
	}
}
