// Package kmerge defines options and sentinel errors for the k-way merge.
package kmerge

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by Merge and MergeSlices.
var (
	// ErrNilQueue indicates one of the source queues is a nil pointer.
	ErrNilQueue = errors.New("kmerge: source queue is nil")

	// ErrUnsortedInput indicates a source yielded a value smaller than its
	// predecessor. Only reported when WithValidateOrder is set.
	ErrUnsortedInput = errors.New("kmerge: source queue is not sorted ascending")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kmerge: invalid option supplied")
)

// Option configures Merge via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Merge.
type Option func(*Options)

// Options holds the parameters and hooks of a merge.
type Options struct {
	// Ctx allows cancellation; checked once per emitted element.
	Ctx context.Context

	// Stable breaks ties between equal values by source index, so equal
	// values leave in the order of the queues that supplied them.
	// When false, ties come out in heap order.
	Stable bool

	// ValidateOrder makes Merge fail with ErrUnsortedInput as soon as a
	// source produces a value smaller than the one before it.
	ValidateOrder bool

	// OnEmit is called after each value is appended to the result, with the
	// value and the index of its source queue. It holds a func(value T,
	// source int) matching Merge's element type, or nil for no hook.
	OnEmit any

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - unstable tie-breaking
//   - no order validation
//   - no OnEmit hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithStable requests input-order tie-breaking among equal values.
func WithStable() Option {
	return func(o *Options) { o.Stable = true }
}

// WithValidateOrder enables the ascending-order check on every source.
func WithValidateOrder() Option {
	return func(o *Options) { o.ValidateOrder = true }
}

// WithOnEmit registers a callback run after each emitted value with that
// value and the index of the queue it came from.
// A nil fn is an option violation, and so is a T that differs from the
// element type of the queues passed to Merge.
func WithOnEmit[T any](fn func(value T, source int)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnEmit hook", ErrOptionViolation)
			return
		}
		o.OnEmit = fn
	}
}
