// Package events provides the in-process refresh signal: after a booking is
// created, updated or deleted, interested observers are notified so they can
// recompute their calendar layouts. The broadcaster stands in for the
// browser-side "bookings-updated" event of a client application, without
// direct references between publisher and subscribers.
package events

import "sync"

// Kind classifies a booking mutation.
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

// Event describes one booking mutation.
type Event struct {
	Kind      Kind
	BookingID int64
}

// Broadcaster fans events out to all current subscribers. Publish never
// blocks: a subscriber that has fallen behind misses the event and is
// expected to refetch on its next one.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int64
	subs   map[int64]chan Event
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int64]chan Event)}
}

// Subscribe registers a new observer. The returned cancel function removes
// the subscription and closes the channel; it is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Event, 16)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer full; it will catch up on the next event.
		}
	}
}

// SubscriberCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
