package queue

import "sync"

// InMemoryQueue implements an in-memory queue on a buffered channel.
type InMemoryQueue[T any] struct {
	ch   chan T
	lock sync.RWMutex
}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue[T any](size int) *InMemoryQueue[T] {
	return &InMemoryQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the end of the queue. Returns ErrQueueFull
// if the queue is at capacity; it never blocks waiting for space.
func (q *InMemoryQueue[T]) Enqueue(item T) error {
	q.lock.Lock()
	defer q.lock.Unlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue removes and returns the item from the front of the queue.
func (q *InMemoryQueue[T]) Dequeue() T {
	q.lock.Lock()
	defer q.lock.Unlock()
	return <-q.ch
}

// Size returns the current size of the queue.
func (q *InMemoryQueue[T]) Size() int {
	q.lock.RLock()
	defer q.lock.RUnlock()
	return len(q.ch)
}

// ReadAll drains the queue and returns all pending items in order.
func (q *InMemoryQueue[T]) ReadAll() []T {
	q.lock.Lock()
	defer q.lock.Unlock()

	var items []T
	for len(q.ch) > 0 {
		items = append(items, <-q.ch)
	}

	return items
}

// Clear discards all pending items.
func (q *InMemoryQueue[T]) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
