// Package queue defines sentinel errors and functional options for Queue.
package queue

import "errors"

// Sentinel errors returned by Queue.
var (
	// ErrEmptyQueue indicates Dequeue or Front was called on a queue with no elements.
	ErrEmptyQueue = errors.New("queue: queue is empty")

	// ErrBadCapacity indicates a negative initial capacity was requested.
	ErrBadCapacity = errors.New("queue: capacity must be non-negative")
)

// defaultCapacity is the ring size allocated on the first Enqueue when no
// capacity was requested.
const defaultCapacity = 8

// Options configures a Queue at construction time.
//
// Capacity – number of slots preallocated for the ring buffer (≥ 0).
// A value of 0 defers allocation until the first Enqueue.
type Options struct {
	Capacity int
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// DefaultOptions returns the zero-allocation defaults used by New.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}

// WithCapacity preallocates room for n elements.
// Panics with ErrBadCapacity if n is negative.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}
