// Package bloom implements a fixed-size Bloom filter: a space-efficient
// probabilistic set-membership structure with one-sided error. Membership
// tests may report false positives but never false negatives.
//
// Bit positions for an item are not produced by k independent hash
// functions. The item digest seeds a deterministic pseudorandom generator
// and k successive draws in [0, m) stand in for the k hashes. Two items
// with colliding digests therefore share their whole bit position
// sequence, and the independence of the k rounds rests on the statistical
// quality of the generator. The figures reported by
// FalsePositiveProbability are calibrated against this scheme, so it must
// not be swapped for double hashing.
package bloom

import (
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Hasher produces a deterministic digest for an item. Equal items must
// produce equal digests. Digest quality directly drives the false
// positive behaviour of a filter built on it.
type Hasher[T any] func(item T) uint64

// Filter is a fixed-size Bloom filter over items of type T. It is not
// safe for concurrent use; wrap it in a GuardedFilter or spread the load
// with a ShardedFilter when several goroutines are involved.
type Filter[T any] struct {
	bits      *bitset.BitSet
	bitsCount int
	setSize   int
	hashCount int
	hasher    Hasher[T]
}

// New allocates an all-zero filter of bitSize bits for setSize expected
// items, with the hash rounds count derived via OptimalHashCount.
func New[T any](bitSize, setSize int, hasher Hasher[T]) (*Filter[T], error) {
	if err := validateConstruction(bitSize, setSize, hasher); err != nil {
		return nil, err
	}
	return newFilter(bitSize, setSize, OptimalHashCount(bitSize, setSize), hasher), nil
}

// NewWithHashCount allocates a filter with an explicitly chosen hash
// rounds count. hashCount is deliberately not validated: a zero value
// silently degenerates Contains to always-true because no bits are ever
// checked, and an oversized value still works but wastes cycles and
// raises the false positive rate.
func NewWithHashCount[T any](bitSize, setSize, hashCount int, hasher Hasher[T]) (*Filter[T], error) {
	if err := validateConstruction(bitSize, setSize, hasher); err != nil {
		return nil, err
	}
	return newFilter(bitSize, setSize, hashCount, hasher), nil
}

// NewFromParams builds a filter from FilterParams. A non-positive
// HashCount falls back to the optimal count for the given sizes.
func NewFromParams[T any](params FilterParams, hasher Hasher[T]) (*Filter[T], error) {
	if params.HashCount > 0 {
		return NewWithHashCount(params.BitsCount, params.SetSize, params.HashCount, hasher)
	}
	return New(params.BitsCount, params.SetSize, hasher)
}

func newFilter[T any](bitSize, setSize, hashCount int, hasher Hasher[T]) *Filter[T] {
	return &Filter[T]{
		bits:      bitset.New(uint(bitSize)),
		bitsCount: bitSize,
		setSize:   setSize,
		hashCount: hashCount,
		hasher:    hasher,
	}
}

func validateConstruction[T any](bitSize, setSize int, hasher Hasher[T]) error {
	var violations *multierror.Error
	if sizesErr := (FilterParams{BitsCount: bitSize, SetSize: setSize}).Validate(); sizesErr != nil {
		violations = multierror.Append(violations, sizesErr)
	}
	if hasher == nil {
		violations = multierror.Append(violations, errors.New("a hasher is required"))
	}
	return violations.ErrorOrNil()
}

// Add derives the hash-round bit positions for item and sets each of
// them. Re-adding an item re-derives the same positions, so the call is
// idempotent on filter state. Bits only ever flip from 0 to 1.
func (f *Filter[T]) Add(item T) {
	rng := f.seededRand(item)
	for i := 0; i < f.hashCount; i++ {
		f.bits.Set(uint(rng.Intn(f.bitsCount)))
	}
}

// Contains reports whether every bit position derived for item is set,
// bailing out on the first unset one. A false result is authoritative;
// a true result may be a false positive.
func (f *Filter[T]) Contains(item T) bool {
	rng := f.seededRand(item)
	for i := 0; i < f.hashCount; i++ {
		if !f.bits.Test(uint(rng.Intn(f.bitsCount))) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether at least one of items tests positive.
// An empty input yields false.
func (f *Filter[T]) ContainsAny(items ...T) bool {
	for _, item := range items {
		if f.Contains(item) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether every one of items tests positive.
// An empty input yields true.
func (f *Filter[T]) ContainsAll(items ...T) bool {
	for _, item := range items {
		if !f.Contains(item) {
			return false
		}
	}
	return true
}

// FalsePositiveProbability estimates (1 - e^(-k*n/m))^k from the declared
// set size, not from the actual number of inserted items. The estimate
// drifts when the insertion count diverges from the declared size.
func (f *Filter[T]) FalsePositiveProbability() float64 {
	hashRounds := float64(f.hashCount)
	return math.Pow(1-math.Exp(-hashRounds*float64(f.setSize)/float64(f.bitsCount)), hashRounds)
}

// HashCount returns the number of hash rounds per item.
func (f *Filter[T]) HashCount() int {
	return f.hashCount
}

// SetHashCount overrides the number of hash rounds. Bits set by earlier
// inserts are not re-derived, so changing it after insertions breaks the
// no-false-negatives guarantee for those items.
func (f *Filter[T]) SetHashCount(hashCount int) {
	f.hashCount = hashCount
}

// SetSize returns the declared expected set size.
func (f *Filter[T]) SetSize() int {
	return f.setSize
}

// SetSetSize overrides the declared set size. Only the false positive
// estimate is affected; the bit vector is left alone.
func (f *Filter[T]) SetSetSize(setSize int) {
	f.setSize = setSize
}

// BitSize returns the bit vector length used for index derivation.
func (f *Filter[T]) BitSize() int {
	return f.bitsCount
}

// SetBitSize overrides the index range of future derivations without
// resizing or rehashing the existing bit vector. Items inserted under the
// old range may stop matching, and a value below 1 makes subsequent
// operations panic. Caller responsibility, not auto-corrected.
func (f *Filter[T]) SetBitSize(bitSize int) {
	f.bitsCount = bitSize
}

// seededRand folds the item digest to 32 bits and seeds a fresh
// deterministic generator with it. Successive draws from the returned
// generator form the bit position sequence for the item.
func (f *Filter[T]) seededRand(item T) *rand.Rand {
	digest := f.hasher(item)
	seed := uint32(digest>>32) ^ uint32(digest)
	return rand.New(rand.NewSource(int64(seed)))
}
