package lis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqkit/lis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []int{2, 3, 1, 2, 0, 8, 9, 1, 3, 7}

// methods lists every Method under test.
var methods = []lis.Method{lis.Memoized, lis.Patience}

// requireIncreasing asserts that idx selects a strictly increasing
// subsequence of nums with the expected length.
func requireIncreasing(t *testing.T, nums []int, idx []int, length int) {
	t.Helper()
	require.Len(t, idx, length)
	for i := 1; i < len(idx); i++ {
		require.Less(t, idx[i-1], idx[i], "indices must ascend")
		require.Less(t, nums[idx[i-1]], nums[idx[i]], "values must strictly ascend")
	}
}

// TestLength_Sample verifies the reference scenario.
func TestLength_Sample(t *testing.T) {
	assert.Equal(t, 4, lis.Length(sample))
}

// TestLIS_Boundaries covers empty, decreasing, increasing and constant inputs
// for every method.
func TestLIS_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		nums []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{5}, 1},
		{"decreasing", []int{9, 7, 5, 3, 1}, 1},
		{"increasing", []int{-2, 0, 1, 4, 8, 9}, 6},
		{"constant", []int{3, 3, 3, 3}, 1},
		{"sample", sample, 4},
	}
	for _, m := range methods {
		for _, tc := range cases {
			t.Run(m.String()+"/"+tc.name, func(t *testing.T) {
				opts := lis.Options{Method: m, ReturnIndices: true}
				res, err := lis.LIS(tc.nums, &opts)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Length)
				requireIncreasing(t, tc.nums, res.Indices, tc.want)
			})
		}
	}
}

// TestLIS_DefaultOptions ensures nil options run the memoized method
// without reconstructing indices.
func TestLIS_DefaultOptions(t *testing.T) {
	res, err := lis.LIS(sample, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Length)
	assert.Nil(t, res.Indices)
}

// TestLIS_UnknownMethod ensures an undefined Method is rejected.
func TestLIS_UnknownMethod(t *testing.T) {
	opts := lis.Options{Method: lis.Method(99)}
	_, err := lis.LIS(sample, &opts)
	assert.ErrorIs(t, err, lis.ErrUnknownMethod)
}

// TestLIS_InputTooLarge ensures Memoized refuses inputs whose memo table
// would exceed MaxMemoizedLen, while Patience still handles them.
func TestLIS_InputTooLarge(t *testing.T) {
	nums := make([]int, lis.MaxMemoizedLen+1)
	for i := range nums {
		nums[i] = i
	}

	_, err := lis.LIS(nums, nil)
	assert.ErrorIs(t, err, lis.ErrInputTooLarge)

	res, err := lis.LIS(nums, &lis.Options{Method: lis.Patience})
	require.NoError(t, err)
	assert.Equal(t, len(nums), res.Length)
}

// TestParseMethod covers name parsing and round-tripping through String.
func TestParseMethod(t *testing.T) {
	for _, m := range methods {
		got, err := lis.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := lis.ParseMethod("memo")
	require.NoError(t, err)
	assert.Equal(t, lis.Memoized, got)

	_, err = lis.ParseMethod("greedy")
	assert.ErrorIs(t, err, lis.ErrUnknownMethod)
}

// TestLIS_Reconstruction checks the concrete subsequences each method picks.
func TestLIS_Reconstruction(t *testing.T) {
	memo := lis.Options{Method: lis.Memoized, ReturnIndices: true}
	res, err := lis.LIS(sample, &memo)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 8, 9}, lis.Pick(sample, res.Indices))

	pat := lis.Options{Method: lis.Patience, ReturnIndices: true}
	res, err = lis.LIS(sample, &pat)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 7}, lis.Pick(sample, res.Indices))
}

// TestLIS_MethodsAgree compares both methods on random inputs.
func TestLIS_MethodsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 300; trial++ {
		nums := make([]int, rng.Intn(40))
		for i := range nums {
			nums[i] = rng.Intn(30) - 10
		}

		want := lis.Length(nums)
		for _, m := range methods {
			opts := lis.Options{Method: m, ReturnIndices: true}
			res, err := lis.LIS(nums, &opts)
			require.NoError(t, err)
			require.Equal(t, want, res.Length, "trial %d method %v nums %v", trial, m, nums)
			requireIncreasing(t, nums, res.Indices, want)
		}
	}
}

// TestLength_Floats exercises a non-integer ordered type.
func TestLength_Floats(t *testing.T) {
	assert.Equal(t, 3, lis.Length([]float64{0.5, -1.25, 0.75, 0.7, 2}))
}
