package shared

import "context"

// EventHandler reacts to domain events, for example evicting cart lines
// when a menu item is removed.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes lists the event types the handler wants to receive.
	// An empty slice subscribes the handler to every event.
	EventTypes() []string
}

// EventPublisher is the write side of the bus. Application services depend
// on this narrow interface so they cannot accidentally register handlers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus wires handlers to publishers and owns their lifecycle.
type EventBus interface {
	EventPublisher
	// Subscribe registers a handler for the given event types, or for all
	// events when none are given.
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
