package kmerge

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/seqkit/queue"
	"golang.org/x/exp/constraints"
)

// Merge combines K queues, each sorted ascending, into a new queue holding
// every input element in ascending order.
//
// The sources are consumed: on success every input queue is empty.
// If Merge fails part-way (cancellation, unsorted input) the sources are left
// partially drained and the partial result is discarded.
//
// Preconditions and validation (in order):
//  1. Options must be valid, including an OnEmit hook typed for T
//     (ErrOptionViolation).
//  2. No entry of queues may be nil (ErrNilQueue).
//
// Algorithm:
//  1. Dequeue the front of every non-empty source into a min-heap of
//     (value, source) entries.
//  2. While the heap is non-empty: pop the minimum, append its value to the
//     result, and if its source still has elements push that source's next
//     front.
//
// Only a source's front can be the global minimum among its remaining
// elements, so the heap always holds the smallest unmerged value.
//
// Complexity:
//
//   - Time:  O(N log K), N = total elements.
//   - Space: O(K) for the heap, O(N) for the result.
func Merge[T constraints.Ordered](queues []*queue.Queue[T], opts ...Option) (*queue.Queue[T], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	onEmit := func(T, int) {}
	if cfg.OnEmit != nil {
		fn, ok := cfg.OnEmit.(func(T, int))
		if !ok {
			return nil, fmt.Errorf("%w: OnEmit hook %T does not accept the element type", ErrOptionViolation, cfg.OnEmit)
		}
		onEmit = fn
	}

	// 2) Validate sources and size the result
	total := 0
	for i, q := range queues {
		if q == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilQueue, i)
		}
		total += q.Len()
	}

	m := &merger[T]{
		options: cfg,
		onEmit:  onEmit,
		sources: queues,
		h: &entryHeap[T]{
			items:  make([]entry[T], 0, len(queues)),
			stable: cfg.Stable,
		},
		out: queue.New[T](queue.WithCapacity(total)),
	}

	// 3) Seed the heap and run the main loop
	if err := m.init(); err != nil {
		return nil, err
	}
	if err := m.process(); err != nil {
		return nil, err
	}

	return m.out, nil
}

// MergeSlices merges ascending slices into one ascending slice.
// The input slices are not modified.
func MergeSlices[T constraints.Ordered](slices [][]T, opts ...Option) ([]T, error) {
	queues := make([]*queue.Queue[T], len(slices))
	for i, s := range slices {
		queues[i] = queue.From(s...)
	}

	merged, err := Merge(queues, opts...)
	if err != nil {
		return nil, err
	}

	return merged.Drain(), nil
}

// merger holds the mutable state for a single Merge execution.
type merger[T constraints.Ordered] struct {
	options Options
	onEmit  func(T, int)
	sources []*queue.Queue[T]
	h       *entryHeap[T]
	out     *queue.Queue[T]
}

// init pushes the front of every non-empty source onto the heap.
func (m *merger[T]) init() error {
	for i, q := range m.sources {
		if q.IsEmpty() {
			continue
		}
		v, err := q.Dequeue()
		if err != nil {
			return fmt.Errorf("kmerge: seed source %d: %w", i, err)
		}
		m.h.items = append(m.h.items, entry[T]{value: v, source: i})
	}
	heap.Init(m.h)

	return nil
}

// process pops the minimum entry until the heap is empty, refilling from the
// source the popped entry came from.
func (m *merger[T]) process() error {
	ctx := m.options.Ctx
	for m.h.Len() > 0 {
		// cancellation check (once per emitted element)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		top := heap.Pop(m.h).(entry[T])
		m.out.Enqueue(top.value)
		m.onEmit(top.value, top.source)

		if err := m.refill(top); err != nil {
			return err
		}
	}

	return nil
}

// refill pushes the next front of prev's source, if any.
func (m *merger[T]) refill(prev entry[T]) error {
	src := m.sources[prev.source]
	if src.IsEmpty() {
		return nil
	}

	v, err := src.Dequeue()
	if err != nil {
		return fmt.Errorf("kmerge: refill source %d: %w", prev.source, err)
	}
	if m.options.ValidateOrder && v < prev.value {
		return fmt.Errorf("%w: source %d yielded %v after %v", ErrUnsortedInput, prev.source, v, prev.value)
	}
	heap.Push(m.h, entry[T]{value: v, source: prev.source})

	return nil
}
