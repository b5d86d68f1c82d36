// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"context"
	"sync"
)

// Listener receives events forwarded by a ChannelPublisher.
type Listener interface {
	OnEvent(event Event)
}

// ChannelPublisher implements Publisher using a buffered channel.
// Events published while the buffer is full, or after Close, are dropped.
type ChannelPublisher struct {
	ch     chan Event
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
	mu     sync.RWMutex
	closed bool
}

// NewChannelPublisher creates a ChannelPublisher with the given buffer size.
func NewChannelPublisher(ctx context.Context, bufferSize int) *ChannelPublisher {
	pctx, cancel := context.WithCancel(ctx)

	return &ChannelPublisher{
		ch:     make(chan Event, bufferSize),
		ctx:    pctx,
		cancel: cancel,
	}
}

// Publish implements Publisher.
func (cp *ChannelPublisher) Publish(event Event) {
	cp.mu.RLock()
	defer cp.mu.RUnlock()

	if cp.closed {
		return
	}

	select {
	case cp.ch <- event:
	case <-cp.ctx.Done():
	default:
	}
}

// Close stops delivery, closes the channel and waits for any Listen goroutine to exit.
func (cp *ChannelPublisher) Close() {
	cp.once.Do(func() {
		cp.mu.Lock()
		cp.closed = true
		close(cp.ch)
		cp.mu.Unlock()

		cp.wg.Wait()
		cp.cancel()
	})
}

// Listen forwards events to the listener on a new goroutine until Close is called.
// Events already buffered when Close is called are still delivered.
func (cp *ChannelPublisher) Listen(listener Listener) {
	cp.wg.Add(1)

	go func() {
		defer cp.wg.Done()

		for event := range cp.ch {
			listener.OnEvent(event)
		}
	}()
}

// Events returns the underlying channel for manual consumption.
func (cp *ChannelPublisher) Events() <-chan Event {
	return cp.ch
}
