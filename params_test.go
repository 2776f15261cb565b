package bloom

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestOptimalHashCount(t *testing.T) {
	cases := []struct {
		name     string
		bitSize  int
		setSize  int
		expected int
	}{
		// 20/3 truncates to 6; ceil(6 * ln 2) = ceil(4.1589) = 5
		{"reference sizes", 20, 3, 5},
		// 9/2 truncates to 4 giving 3; float division would give 4
		{"truncation differs from float division", 9, 2, 3},
		{"exact quotient", 100, 10, 7},
		{"single bit per item", 10, 10, 1},
		{"quotient truncates to zero", 3, 5, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, OptimalHashCount(c.bitSize, c.setSize))
			require.Equal(t, c.expected, FilterParams{BitsCount: c.bitSize, SetSize: c.setSize}.OptimalHashCount())
		})
	}
}

func TestFilterParamsValidate(t *testing.T) {
	require.NoError(t, FilterParams{BitsCount: 20, SetSize: 3}.Validate())
	require.NoError(t, FilterParams{BitsCount: 1, SetSize: 1, HashCount: 7}.Validate())

	err := FilterParams{BitsCount: 0, SetSize: -1, HashCount: -2}.Validate()
	require.Error(t, err)
	batch, ok := err.(*multierror.Error)
	require.True(t, ok, "all violations should be reported together")
	require.Len(t, batch.Errors, 3)
}

func TestEstimateParameters(t *testing.T) {
	bits, hashes := EstimateParameters(500, 0.001)
	require.Greater(t, bits, 0)
	require.GreaterOrEqual(t, hashes, 1)

	looseBits, _ := EstimateParameters(500, 0.1)
	require.Less(t, looseBits, bits, "a looser false positives target needs fewer bits")
}

func TestNewFromParams(t *testing.T) {
	filter, err := NewFromParams(FilterParams{BitsCount: 20, SetSize: 3}, StringHasher)
	require.NoError(t, err)
	require.Equal(t, 5, filter.HashCount(), "zero HashCount falls back to the optimal count")

	filter, err = NewFromParams(FilterParams{BitsCount: 20, SetSize: 3, HashCount: 2}, StringHasher)
	require.NoError(t, err)
	require.Equal(t, 2, filter.HashCount())

	_, err = NewFromParams(FilterParams{BitsCount: 0, SetSize: 3}, StringHasher)
	require.Error(t, err)
}
