package queue

import "errors"

// ErrQueueFull is returned by Enqueue when the queue is at capacity.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a basic staging queue.
type Queue[T any] interface {
	Enqueue(item T) error
	Dequeue() T
	Size() int
	ReadAll() []T
	Clear()
}
