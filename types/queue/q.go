package queue

import (
	"github.com/ef-ds/deque/v2"
)

// Q is a generic FIFO queue backed by github.com/ef-ds/deque.
// Enqueue and Dequeue are O(1).
type Q[T any] struct {
	items deque.Deque[T]
}

// New creates a new Q
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Enqueue adds an item to the end of the queue
func (q *Q[T]) Enqueue(item T) {
	q.items.PushBack(item)
}

// Dequeue removes and returns the first item from the queue
func (q *Q[T]) Dequeue() (T, bool) {
	return q.items.PopFront()
}

// Peek returns the first item from the queue without removing it
func (q *Q[T]) Peek() (T, bool) {
	return q.items.Front()
}

// Len returns the number of items in the Q
func (q *Q[T]) Len() int {
	return q.items.Len()
}

// Clear removes all items
func (q *Q[T]) Clear() {
	q.items.Init()
}
