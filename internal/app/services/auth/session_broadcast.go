package auth

import (
	"sync"

	"openwindows-service/internal/pkg/dto/responses"
)

// sessionBroadcast fans session state out to in-process listeners. The
// registry survives for the process lifetime; unsubscribing removes the
// listener and is safe to call more than once.
type sessionBroadcast struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]SessionListener
}

func newSessionBroadcast() *sessionBroadcast {
	return &sessionBroadcast{
		listeners: make(map[int]SessionListener),
	}
}

func (b *sessionBroadcast) subscribe(listener SessionListener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.listeners[id] = listener

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	}
}

func (b *sessionBroadcast) publish(session *responses.Session) {
	b.mu.Lock()
	snapshot := make([]SessionListener, 0, len(b.listeners))
	for _, listener := range b.listeners {
		snapshot = append(snapshot, listener)
	}
	b.mu.Unlock()

	for _, listener := range snapshot {
		listener(session)
	}
}
