// Package seqkit is a small toolkit for ordered sequences: merging sorted
// queues and measuring increasing subsequences.
//
// 🚀 What is inside?
//
//	• queue/  — generic FIFO Queue over a ring buffer, ErrEmptyQueue on empty access
//	• kmerge/ — k-way merge of ascending queues with a min-heap, O(N log K)
//	• lis/    — longest strictly increasing subsequence: memoized O(n²) or patience O(n log n)
//	• cmd/seqkit — CLI demo: `seqkit merge`, `seqkit lis`
//
// ✨ Why seqkit?
//
//   - Explicit errors instead of sentinel values
//   - Functional options and hooks (WithStable, WithOnEmit…) for custom logic
//   - Generic over any ordered element type
//
// Quick example:
//
//	merged, _ := kmerge.Merge([]*queue.Queue[int]{
//		queue.From(1, 4, 7), queue.From(2, 5, 8), queue.From(3, 6, 9),
//	})
//	fmt.Println(merged)                                     // 1 2 3 4 5 6 7 8 9
//	fmt.Println(lis.Length([]int{2, 3, 1, 2, 0, 8, 9, 1, 3, 7})) // 4
//
//	go get github.com/katalvlaran/seqkit
package seqkit
