// Package lis defines methods, options and errors for the longest
// increasing subsequence computation.
package lis

import (
	"errors"
	"fmt"
)

// Method selects the algorithm used by LIS.
//
//   - Memoized — top-down recursion over (position, previous index) with an
//     (n+1)x(n+1) memo table. Time O(n²), memory O(n²).
//
//   - Patience — patience sorting with binary search over pile tops.
//     Time O(n log n), memory O(n).
type Method int

const (
	// Memoized is the default method: recursion with a -1-initialized memo table.
	Memoized Method = iota

	// Patience uses binary search over the smallest tail of each length.
	Patience
)

// String returns the lowercase method name used on the command line.
func (m Method) String() string {
	switch m {
	case Memoized:
		return "memoized"
	case Patience:
		return "patience"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name ("memoized", "patience") to a Method.
// "memo" is accepted as a short alias for "memoized".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "memoized", "memo":
		return Memoized, nil
	case "patience":
		return Patience, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Sentinel errors returned by LIS.
var (
	// ErrUnknownMethod indicates Options.Method is not a defined Method.
	ErrUnknownMethod = errors.New("lis: unknown method")

	// ErrInputTooLarge indicates the input exceeds MaxMemoizedLen for the
	// Memoized method.
	ErrInputTooLarge = errors.New("lis: input too long for memoized method")
)

// MaxMemoizedLen is the longest input LIS accepts with Memoized. The memo
// table holds (n+1)² ints, about 128 MiB at this length.
const MaxMemoizedLen = 4096

// unset marks a memo cell that has not been computed yet.
const unset = -1

// Options configures LIS.
//
// Fields:
//   - Method        — algorithm to run (Memoized or Patience).
//   - ReturnIndices — if true, Result.Indices holds the positions of one
//     longest strictly increasing subsequence.
type Options struct {
	Method        Method
	ReturnIndices bool
}

// DefaultOptions returns Options{Method: Memoized, ReturnIndices: false}.
func DefaultOptions() Options {
	return Options{Method: Memoized}
}

// Result is the outcome of LIS.
//
// Length  – length of the longest strictly increasing subsequence.
// Indices – ascending positions into the input of one such subsequence;
// nil unless Options.ReturnIndices was set.
type Result struct {
	Length  int
	Indices []int
}
