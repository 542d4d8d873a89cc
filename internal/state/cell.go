// Package state provides an observable value holder for views that poll or subscribe.
package state

import (
	"context"
	"sync"
)

// Cell owns a value of T and pushes changes to subscribers.
// Subscribers always see the latest value; intermediate values may be skipped.
type Cell[T any] struct {
	mu     sync.RWMutex
	val    T
	subs   map[uint64]chan T
	nextID uint64
	closed bool
}

// New returns a cell holding initial.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{
		val:  initial,
		subs: make(map[uint64]chan T),
	}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

// Set replaces the value and notifies subscribers.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = v
	c.publish(v)
}

// Update applies fn to the current value atomically and returns the result.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = fn(c.val)
	c.publish(c.val)
	return c.val
}

// Subscribe returns a channel that immediately carries the current value and then
// each later one. The channel is closed when ctx is done or the cell is closed.
func (c *Cell[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(ch)
		return ch
	}
	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.val
	c.mu.Unlock()

	context.AfterFunc(ctx, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
	})
	return ch
}

// Subscribers reports how many subscriptions are live.
func (c *Cell[T]) Subscribers() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.subs)
}

// Close ends every subscription. The value stays readable through Get.
func (c *Cell[T]) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
}

// publish must be called with mu held. Only publish sends, so after draining a
// stale value the buffered send cannot block.
func (c *Cell[T]) publish(v T) {
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}
