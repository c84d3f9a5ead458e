// Package events provides an in-process publish/subscribe bus used to tell
// active views that the store changed. Notifications carry no payload: the
// guarantee is "something changed", not "what changed".
package events

import (
	"fmt"
	"log/slog"
	"sync"
)

// Topic identifies a class of notifications on the bus.
type Topic string

// StoreChanged is published after every mutating store operation.
const StoreChanged Topic = "store.changed"

// Handler receives a notification. Handlers must not assume any ordering
// between rapid successive notifications; reloading full state is the
// expected reaction.
type Handler func()

// Bus is a concurrency-safe synchronous dispatcher. Publish invokes all
// handlers registered for the topic before returning.
// Delivery is best-effort and at-most-once per call: a consumer that is not
// subscribed at the moment of the signal misses it.
type Bus struct {
	subscribers map[Topic]map[uint64]Handler
	nextID      uint64
	mu          sync.RWMutex
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Topic]map[uint64]Handler),
	}
}

// Subscribe registers a handler for the given topic. It returns an
// unsubscribe function that removes the handler when called.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID

	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[uint64]Handler)
	}
	b.subscribers[topic][id] = h
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		if handlers := b.subscribers[topic]; handlers != nil {
			delete(handlers, id)
			if len(handlers) == 0 {
				delete(b.subscribers, topic)
			}
		}
	}
}

// Publish notifies all handlers registered for the topic. Panics in handlers
// are recovered and logged; a failing handler never affects the publisher or
// the remaining handlers.
func (b *Bus) Publish(topic Topic) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subscribers[topic]))
	ids := make([]uint64, 0, len(b.subscribers[topic]))
	for id, h := range b.subscribers[topic] {
		ids = append(ids, id)
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for i, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("event handler panicked",
						"topic", topic,
						"handler", ids[i],
						"panic", fmt.Sprint(r))
				}
			}()
			h()
		}()
	}
}
