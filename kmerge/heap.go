package kmerge

import "golang.org/x/exp/constraints"

// entry is the current front of one source queue.
type entry[T constraints.Ordered] struct {
	value  T   // value dequeued from the source
	source int // index of the source queue, used to refill
}

// entryHeap is a min-heap of entries ordered by value ascending. With stable
// set, equal values are ordered by source index; the heap never holds two
// entries from the same source, so (value, source) is a total order.
type entryHeap[T constraints.Ordered] struct {
	items  []entry[T]
	stable bool
}

// Len returns the number of entries in the heap.
func (h *entryHeap[T]) Len() int { return len(h.items) }

// Less orders by value, then (when stable) by source index.
func (h *entryHeap[T]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.value != b.value || !h.stable {
		return a.value < b.value
	}

	return a.source < b.source
}

// Swap swaps two entries.
func (h *entryHeap[T]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push appends x; called by heap.Push.
func (h *entryHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop.
func (h *entryHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
