// Package pubsub provides small typed in-process event channels.
// Each logical event stream gets its own Bus so subscribers never have
// to demultiplex a shared global event name.
package pubsub

import "sync"

// Bus broadcasts values of one event type to any number of subscribers.
// Publish never blocks: a subscriber that is not draining its channel
// misses events rather than stalling the publisher.
type Bus[T any] struct {
	mu   sync.Mutex
	subs map[int]chan T
	next int
}

// NewBus creates an empty bus.
func NewBus[T any]() *Bus[T] {
	return &Bus[T]{subs: make(map[int]chan T)}
}

// Subscribe registers a new subscriber and returns its receive channel
// along with a cancel function that must be called to release it.
func (b *Bus[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan T, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if ch, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish delivers event to every current subscriber without blocking.
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
