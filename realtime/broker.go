package realtime

import (
	"context"
	"strings"
	"sync"
)

// Broker carries encoded events between gateway instances.
// Channels are "room.<conversation id>" or "user.<user id>".
type Broker interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	// Subscribe delivers every published payload to handler until ctx is done.
	// It returns once the subscription is in place.
	Subscribe(ctx context.Context, handler func(channel string, payload []byte)) error
	Close() error
}

const (
	roomChannelPrefix = "room."
	userChannelPrefix = "user."
)

func roomChannel(conversationID string) string {
	return roomChannelPrefix + conversationID
}

func userChannel(userID string) string {
	return userChannelPrefix + userID
}

// MemoryBroker delivers within the same process.
type MemoryBroker struct {
	mu       sync.RWMutex
	handlers map[int]func(channel string, payload []byte)
	nextID   int
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{handlers: make(map[int]func(string, []byte))}
}

func (b *MemoryBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	b.mu.RLock()
	handlers := make([]func(string, []byte), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(channel, payload)
	}
	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, handler func(channel string, payload []byte)) error {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}()

	return nil
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	clear(b.handlers)
	b.mu.Unlock()
	return nil
}

// trimNamespace strips the broker specific prefix of a subject or channel.
func trimNamespace(s, namespace string) (string, bool) {
	return strings.CutPrefix(s, namespace)
}
