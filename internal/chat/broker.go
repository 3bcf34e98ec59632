package chat

import (
	"context"
	"sync"
)

// DeliverFunc hands an encoded frame to the local members of a room
type DeliverFunc func(teamID string, frame []byte)

// Broker fans frames out to every hub instance that serves the room
type Broker interface {
	Publish(ctx context.Context, teamID string, frame []byte) error
	Subscribe(deliver DeliverFunc) error
	Close() error
}

// LocalBroker delivers in-process, for single-instance deployments
type LocalBroker struct {
	mu      sync.RWMutex
	deliver DeliverFunc
}

func NewLocalBroker() *LocalBroker {
	return &LocalBroker{}
}

func (b *LocalBroker) Publish(_ context.Context, teamID string, frame []byte) error {
	b.mu.RLock()
	deliver := b.deliver
	b.mu.RUnlock()

	if deliver != nil {
		deliver(teamID, frame)
	}
	return nil
}

func (b *LocalBroker) Subscribe(deliver DeliverFunc) error {
	b.mu.Lock()
	b.deliver = deliver
	b.mu.Unlock()
	return nil
}

func (b *LocalBroker) Close() error {
	return nil
}
