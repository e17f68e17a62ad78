// Package events provides the typed publish/subscribe channel that ties the
// request gateway, the session manager, and the terminal UI together without
// any of them knowing about each other.
//
// Subscribers attach and detach independently; publishing delivers the event
// to every subscriber registered at that moment, synchronously, on the
// publishing goroutine.
package events

import "sync"

// Kind identifies the lifecycle signal being broadcast.
type Kind string

const (
	// RequestStarted and RequestEnded are emitted in pairs around every
	// gateway call, success or failure.
	RequestStarted Kind = "request:started"
	RequestEnded   Kind = "request:ended"

	// SessionExpired means the bearer credential is no longer valid:
	// the expiry timer fired or the server rejected it.
	SessionExpired Kind = "session:expired"

	// AccountSuspended is a business condition reported in a response
	// payload. It does not invalidate the session.
	AccountSuspended Kind = "account:suspended"
)

// Event is a single broadcast signal. Op names the gateway operation that
// produced it, if any; Reason carries the server-supplied detail for
// AccountSuspended.
type Event struct {
	Kind   Kind
	Op     string
	Reason string
}

// Bus fans events out to any number of subscribers. Safe for concurrent use.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for every subsequent Publish and returns a function
// that detaches it. Detaching twice is harmless.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish delivers e to all current subscribers. Handlers run outside the
// bus lock, so they may subscribe, unsubscribe, or publish themselves.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
