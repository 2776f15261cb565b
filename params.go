package bloom

import (
	"math"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// FilterParams collects the sizing knobs of a single filter. A zero
// HashCount means "derive the optimal count from BitsCount and SetSize"
// when the params are turned into a filter.
type FilterParams struct {
	BitsCount int
	SetSize   int
	HashCount int
}

// Validate reports every sizing violation at once.
func (fp FilterParams) Validate() error {
	var violations *multierror.Error
	if fp.BitsCount < 1 {
		violations = multierror.Append(violations, errors.Errorf("bit vector length must be at least 1, got %d", fp.BitsCount))
	}
	if fp.SetSize < 1 {
		violations = multierror.Append(violations, errors.Errorf("declared set size must be at least 1, got %d", fp.SetSize))
	}
	if fp.HashCount < 0 {
		violations = multierror.Append(violations, errors.Errorf("hash rounds count must not be negative, got %d", fp.HashCount))
	}
	return violations.ErrorOrNil()
}

// OptimalHashCount derives the hash rounds count from the stored sizes.
func (fp FilterParams) OptimalHashCount() int {
	return OptimalHashCount(fp.BitsCount, fp.SetSize)
}

// OptimalHashCount returns ceil((bitSize/setSize) * ln 2), the hash
// rounds count minimizing the false positive rate for the given sizes.
// The quotient bitSize/setSize is an integer division on purpose: the
// truncation before the multiply is part of the reference behaviour and
// must not be replaced with floating point division.
func OptimalHashCount(bitSize, setSize int) int {
	return int(math.Ceil(float64(bitSize/setSize) * math.Ln2))
}

// EstimateParameters sizes a bit vector and hash rounds count from an
// expected elements count and a target false positives rate.
func EstimateParameters(expectedElements uint, falsePositives float64) (bitsCount, hashCount int) {
	m, k := bloom.EstimateParameters(expectedElements, falsePositives)
	return int(m), int(k)
}
