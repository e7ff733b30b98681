package queue

import (
	"fmt"
	"strings"
)

// Queue is a FIFO queue over a ring buffer.
//
// buf holds the storage; head is the index of the front element and count
// the number of live elements. Live elements occupy
// buf[head], buf[(head+1)%len(buf)], …, wrapping around the end of buf.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	buf   []T
	head  int
	count int
}

// New creates an empty queue, applying any functional options.
//
// Example:
//
//	q := queue.New[int](queue.WithCapacity(64))
func New[T any](opts ...Option) *Queue[T] {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	q := &Queue[T]{}
	if cfg.Capacity > 0 {
		q.buf = make([]T, cfg.Capacity)
	}

	return q
}

// From creates a queue holding values in the given order;
// values[0] becomes the front.
func From[T any](values ...T) *Queue[T] {
	q := New[T](WithCapacity(len(values)))
	for _, v := range values {
		q.Enqueue(v)
	}

	return q
}

// Enqueue appends x at the logical end of the queue. It always succeeds.
func (q *Queue[T]) Enqueue(x T) {
	if q.count == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.count)%len(q.buf)] = x
	q.count++
}

// Dequeue removes and returns the front element.
// Returns the zero value and ErrEmptyQueue if the queue has no elements.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmptyQueue
	}

	v := q.buf[q.head]
	q.buf[q.head] = zero // release references held by the slot
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	if q.count == 0 {
		q.head = 0
	}

	return v, nil
}

// Front returns the front element without removing it.
// Returns the zero value and ErrEmptyQueue if the queue has no elements.
func (q *Queue[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.buf[q.head], nil
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Len returns the number of live elements.
func (q *Queue[T]) Len() int { return q.count }

// Values returns a copy of the live elements in FIFO order.
// The queue is not modified.
func (q *Queue[T]) Values() []T {
	out := make([]T, q.count)
	for i := 0; i < q.count; i++ {
		out[i] = q.buf[(q.head+i)%len(q.buf)]
	}

	return out
}

// Drain dequeues every element and returns them in FIFO order.
// The queue is empty afterwards.
func (q *Queue[T]) Drain() []T {
	out := q.Values()
	q.Clear()

	return out
}

// Clear removes all elements, keeping the allocated storage for reuse.
func (q *Queue[T]) Clear() {
	var zero T
	for i := range q.buf {
		q.buf[i] = zero
	}
	q.head = 0
	q.count = 0
}

// String renders the live elements front to back, separated by single spaces.
func (q *Queue[T]) String() string {
	var b strings.Builder
	for i := 0; i < q.count; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, q.buf[(q.head+i)%len(q.buf)])
	}

	return b.String()
}

// grow doubles the ring (or allocates defaultCapacity slots) and unwraps
// the live elements so the front sits at index 0.
func (q *Queue[T]) grow() {
	newCap := 2 * len(q.buf)
	if newCap < defaultCapacity {
		newCap = defaultCapacity
	}

	buf := make([]T, newCap)
	for i := 0; i < q.count; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
