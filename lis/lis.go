package lis

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Length returns the length of the longest strictly increasing subsequence
// of nums using memoized recursion.
//
// Equivalent to LIS(nums, nil).Length, except that no MaxMemoizedLen check
// is made: the caller owns the O(n²) memory of the memo table.
func Length[T constraints.Ordered](nums []T) int {
	s := newMemoSolver(nums)

	return s.solve(0, -1)
}

// LIS computes the longest strictly increasing subsequence of nums.
// A nil opts uses DefaultOptions.
//
// Algorithm (Memoized):
//  1. Let n = len(nums). Allocate an (n+1)x(n+1) memo, every cell -1.
//  2. solve(ind, prev) = 0 if ind == n; otherwise the max of
//     skip = solve(ind+1, prev) and, when prev == -1 or nums[ind] > nums[prev],
//     take = 1 + solve(ind+1, ind). Results are cached at memo[ind][prev+1].
//  3. Length = solve(0, -1).
//  4. If ReturnIndices, walk ind = 0..n-1 and take nums[ind] whenever taking
//     it still reaches the optimum cached for (ind, prev).
//
// Algorithm (Patience):
//
//	For each element, binary-search the shortest pile whose tail is ≥ it and
//	replace that tail (or start a new pile). The number of piles is the LIS
//	length; predecessor links recover the subsequence.
//
// Errors:
//   - ErrUnknownMethod — opts.Method is not Memoized or Patience.
//   - ErrInputTooLarge — Method is Memoized and len(nums) > MaxMemoizedLen.
func LIS[T constraints.Ordered](nums []T, opts *Options) (Result, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}

	switch cfg.Method {
	case Memoized:
		if len(nums) > MaxMemoizedLen {
			return Result{}, fmt.Errorf("%w: %d elements, limit %d", ErrInputTooLarge, len(nums), MaxMemoizedLen)
		}
		s := newMemoSolver(nums)
		res := Result{Length: s.solve(0, -1)}
		if cfg.ReturnIndices {
			res.Indices = s.indices()
		}

		return res, nil
	case Patience:
		return patience(nums, cfg.ReturnIndices), nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMethod, cfg.Method)
	}
}

// Pick returns the elements of nums at the given indices, in order.
func Pick[T any](nums []T, indices []int) []T {
	out := make([]T, len(indices))
	for i, idx := range indices {
		out[i] = nums[idx]
	}

	return out
}

// memoSolver holds the input and the memo table of one Memoized run.
// memo[ind][prev+1] caches solve(ind, prev); prev = -1 means "nothing taken yet".
type memoSolver[T constraints.Ordered] struct {
	nums []T
	memo [][]int
}

// newMemoSolver allocates the (n+1)x(n+1) table with every cell unset.
func newMemoSolver[T constraints.Ordered](nums []T) *memoSolver[T] {
	n := len(nums)
	memo := make([][]int, n+1)
	for i := range memo {
		memo[i] = make([]int, n+1)
		for j := range memo[i] {
			memo[i][j] = unset
		}
	}

	return &memoSolver[T]{nums: nums, memo: memo}
}

// solve returns the LIS length of nums[ind:] whose first element must exceed
// nums[prev] (no constraint when prev == -1).
func (s *memoSolver[T]) solve(ind, prev int) int {
	if ind == len(s.nums) {
		return 0
	}
	if cached := s.memo[ind][prev+1]; cached != unset {
		return cached
	}

	best := s.solve(ind+1, prev)
	if prev == -1 || s.nums[ind] > s.nums[prev] {
		if take := 1 + s.solve(ind+1, ind); take > best {
			best = take
		}
	}
	s.memo[ind][prev+1] = best

	return best
}

// indices reconstructs one optimal subsequence, preferring to take an
// element whenever taking it is still optimal.
func (s *memoSolver[T]) indices() []int {
	out := make([]int, 0, s.solve(0, -1))
	prev := -1
	for ind := range s.nums {
		if prev != -1 && s.nums[ind] <= s.nums[prev] {
			continue
		}
		if 1+s.solve(ind+1, ind) >= s.solve(ind+1, prev) {
			out = append(out, ind)
			prev = ind
		}
	}

	return out
}

// patience runs the O(n log n) method.
//
// tails[l] is the index of the smallest element that ends an increasing
// subsequence of length l (1-based; tails[0] unused). parent[i] is the index
// preceding nums[i] in the subsequence ending at i, or -1.
func patience[T constraints.Ordered](nums []T, wantIndices bool) Result {
	n := len(nums)
	if n == 0 {
		return Result{}
	}

	tails := make([]int, n+1)
	parent := make([]int, n)
	length := 0
	for i := range nums {
		// smallest l in [1, length] with nums[tails[l]] >= nums[i]
		lo, hi := 1, length
		for lo <= hi {
			mid := (lo + hi + 1) / 2
			if nums[tails[mid]] < nums[i] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
		if lo > 1 {
			parent[i] = tails[lo-1]
		} else {
			parent[i] = -1
		}
		tails[lo] = i
		if lo > length {
			length = lo
		}
	}

	res := Result{Length: length}
	if !wantIndices {
		return res
	}
	res.Indices = make([]int, length)
	for k, i := tails[length], length-1; i >= 0; k, i = parent[k], i-1 {
		res.Indices[i] = k
	}

	return res
}
