// Package kmerge merges K individually sorted queues into one sorted queue
// using a min-heap keyed on each queue's current front.
//
// Overview:
//
//   - Merge consumes a slice of *queue.Queue[T] whose contents are each
//     ascending and returns a new queue with all elements in ascending order.
//   - MergeSlices does the same for plain slices without mutating them.
//   - The heap holds at most one entry per source: the smallest value that
//     source has not yet emitted. Popping the heap minimum therefore yields
//     the global minimum of everything not yet merged.
//
// Key features:
//
//   - Functional options keep the signature small.
//   - WithStable: equal values leave in source-index order (deterministic ties).
//     Without it any relative order among equal values is acceptable.
//   - WithValidateOrder: detect sources that are not actually ascending.
//   - WithContext: cancel long merges between emissions.
//   - WithOnEmit: observe each emitted (value, source) pair.
//
// Edge cases:
//
//   - K = 0 → empty result.
//   - Empty sources contribute nothing; all sources empty → empty result.
//   - Merge never dequeues from an empty source: emptiness is checked first.
//
// Complexity:
//
//   - Time:  O(N log K), N = total number of elements, K = number of sources.
//   - Space: O(K) auxiliary for the heap, O(N) for the result.
//
// Errors (sentinel):
//
//   - ErrNilQueue        if an entry of the input slice is nil.
//   - ErrUnsortedInput   if WithValidateOrder is set and a source descends.
//   - ErrOptionViolation if an option received an invalid argument.
//   - ctx.Err()          if the context passed via WithContext is done.
//
// Example:
//
//	merged, err := kmerge.Merge([]*queue.Queue[int]{
//		queue.From(1, 4, 7),
//		queue.From(2, 5, 8),
//		queue.From(3, 6, 9),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(merged) // 1 2 3 4 5 6 7 8 9
//
// Thread safety:
//
//   - Merge mutates its input queues; do not share them with other goroutines
//     during a merge.
package kmerge
