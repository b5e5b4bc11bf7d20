package commands

import (
	"context"
	"sync"
)

// InMemoryBus is a key-based dispatcher. Registration happens during startup;
// Dispatch is safe for unbounded concurrent use afterwards.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string]func(ctx context.Context, cmd Command) (any, error)
}

// NewInMemoryBus builds an empty bus.
func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string]func(ctx context.Context, cmd Command) (any, error)),
	}
}

// RegisterHandler binds a typed handler to a command key.
func RegisterHandler[C Command, R any](bus *InMemoryBus, key string, h Handler[C, R]) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.handlers[key] = func(ctx context.Context, cmd Command) (any, error) {
		typed, ok := cmd.(C)
		if !ok {
			return nil, ErrInvalidCommand
		}
		return h.Handle(ctx, typed)
	}
}

// Dispatch routes cmd to the handler registered under its key.
func (b *InMemoryBus) Dispatch(ctx context.Context, cmd Command) (any, error) {
	b.mu.RLock()
	handler, ok := b.handlers[cmd.Key()]
	b.mu.RUnlock()
	if !ok {
		return nil, ErrHandlerNotFound
	}
	return handler(ctx, cmd)
}

var _ Bus = (*InMemoryBus)(nil)
