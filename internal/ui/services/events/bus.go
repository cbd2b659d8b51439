package events

import (
	"log"
	"runtime/debug"
	"sync"

	"scrollpage/internal/domain"
)

type subscription struct {
	id      int
	handler func(domain.DomainEvent)
}

// Bus is a synchronous event bus. Handlers run on the publishing goroutine,
// in subscription order, before Publish returns.
type Bus struct {
	mu        sync.RWMutex
	nextID    int
	listeners map[domain.EventType][]subscription
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[domain.EventType][]subscription),
	}
}

// Subscribe registers a listener for an event type.
// Returns an unsubscribe function.
func (b *Bus) Subscribe(eventType domain.EventType, handler func(domain.DomainEvent)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventType] = append(b.listeners[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.listeners[eventType]
		for i, s := range subs {
			if s.id == id {
				b.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event domain.DomainEvent) {
	if event == nil {
		return
	}

	// Copy so handlers may subscribe or unsubscribe without deadlocking
	b.mu.RLock()
	subs := make([]subscription, len(b.listeners[event.Type()]))
	copy(subs, b.listeners[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.call(event, s.handler)
	}
}

func (b *Bus) call(event domain.DomainEvent, handler func(domain.DomainEvent)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}
