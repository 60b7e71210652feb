package events

import (
	"fmt"
	"sync"
)

// Bus is a simple synchronous event bus for UI services. Handlers run on
// the publishing goroutine, which inside the TUI is the update loop.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type, see TypeOf
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish calls every listener of the event's type in subscription order
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := append([]func(interface{}){}, b.listeners[TypeOf(event)]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TypeOf returns the key listeners use to subscribe to event
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
