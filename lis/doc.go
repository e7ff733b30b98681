// Package lis computes the length of the longest strictly increasing
// subsequence (LIS) of a sequence, and optionally one such subsequence.
//
// 🚀 What is an LIS?
//
//	Given nums, an increasing subsequence keeps some elements in their
//	original order such that each is strictly greater than the one before.
//	For [2 3 1 2 0 8 9 1 3 7] the LIS length is 4, e.g. [2 3 8 9] or [0 1 3 7].
//
// ✨ Key features:
//   - Length: the memoized recursion over (position, previous index),
//     memo sized (n+1)x(n+1) with -1 meaning "not computed".
//   - LIS with Options: choose Memoized or Patience (O(n log n)) and
//     optionally recover the subsequence indices.
//   - Generic over any ordered element type.
//
// ⚙️ Usage:
//
//	n := lis.Length([]int{2, 3, 1, 2, 0, 8, 9, 1, 3, 7}) // 4
//
//	opts := lis.Options{Method: lis.Patience, ReturnIndices: true}
//	res, err := lis.LIS(nums, &opts)
//	fmt.Println(res.Length, lis.Pick(nums, res.Indices))
//
// Boundaries:
//
//   - empty input → 0
//   - strictly decreasing input → 1
//   - strictly increasing input of length n → n
//
// Performance:
//
//   - Memoized: O(n²) time, O(n²) memory, recursion depth n.
//   - Patience: O(n log n) time, O(n) memory.
package lis
