package events

import "scrollpage/internal/domain"

// EventBus is a simple interface for publishing events
type EventBus interface {
	Publish(event domain.DomainEvent)
	Subscribe(eventType domain.EventType, handler func(domain.DomainEvent)) func()
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (n *NullBus) Publish(event domain.DomainEvent) {}
func (n *NullBus) Subscribe(eventType domain.EventType, handler func(domain.DomainEvent)) func() {
	return func() {}
}
