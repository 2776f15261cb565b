package bloom

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ShardedFilter spreads items over a fixed set of independently guarded
// filters, routed by item digest. Each shard is sized with the same
// FilterParams, so the aggregate behaves like one larger filter whose
// shards never contend on the same lock.
type ShardedFilter[T any] struct {
	shards []*GuardedFilter[T]
	hasher Hasher[T]
	hooks  *Hooks
	logger Logger
}

// NewSharded builds shardsCount filters sized by params, each behind its
// own mutex.
func NewSharded[T any](shardsCount int, params FilterParams, hasher Hasher[T]) (*ShardedFilter[T], error) {
	if shardsCount < 1 {
		return nil, errors.Errorf("at least one shard is required, got %d", shardsCount)
	}
	if validationErr := params.Validate(); validationErr != nil {
		return nil, errors.Wrap(validationErr, "shard params validation failed")
	}
	shards := make([]*GuardedFilter[T], shardsCount)
	var constructionErr *multierror.Error
	for shardID := range shards {
		filter, filterErr := NewFromParams(params, hasher)
		if filterErr != nil {
			constructionErr = multierror.Append(constructionErr, errors.Wrapf(filterErr, "shard %d construction failed", shardID))
			continue
		}
		shards[shardID] = NewGuarded(filter)
	}
	if err := constructionErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &ShardedFilter[T]{
		shards: shards,
		hasher: hasher,
		hooks:  NewHooks(),
		logger: StdLogger(nil),
	}, nil
}

// NewShardedWithEstimates sizes every shard from the total expected
// elements count and a target false positives rate instead of explicit
// bit vector sizes.
func NewShardedWithEstimates[T any](shardsCount int, totalElements uint, falsePositives float64, hasher Hasher[T]) (*ShardedFilter[T], error) {
	if shardsCount < 1 {
		return nil, errors.Errorf("at least one shard is required, got %d", shardsCount)
	}
	if falsePositives <= 0 || falsePositives >= 1 {
		return nil, errors.Errorf("false positives rate must be in (0, 1), got %v", falsePositives)
	}
	bitsCount, hashCount := EstimateParameters(totalElements/uint(shardsCount), falsePositives)
	sharded, err := NewSharded(shardsCount, FilterParams{
		BitsCount: bitsCount,
		SetSize:   int(totalElements) / shardsCount,
		HashCount: hashCount,
	}, hasher)
	if err != nil {
		return nil, err
	}
	sharded.logger("sharded filter sized from estimates: bits per shard", bitsCount, "hash rounds", hashCount)
	return sharded, nil
}

// SetHooks replaces the instrumentation hooks.
func (sf *ShardedFilter[T]) SetHooks(hooks *Hooks) {
	sf.hooks = hooks
}

// SetLogger replaces the diagnostics logger.
func (sf *ShardedFilter[T]) SetLogger(logger Logger) {
	sf.logger = logger
}

func (sf *ShardedFilter[T]) Add(item T) {
	shardID := sf.shardID(item)
	sf.hooks.Before(ShardAdd, shardID)
	sf.shards[shardID].Add(item)
	sf.hooks.After(ShardAdd, shardID)
}

func (sf *ShardedFilter[T]) Contains(item T) bool {
	shardID := sf.shardID(item)
	sf.hooks.Before(ShardTest, shardID)
	found := sf.shards[shardID].Contains(item)
	sf.hooks.After(ShardTest, shardID, found)
	return found
}

func (sf *ShardedFilter[T]) ContainsAny(items ...T) bool {
	for _, item := range items {
		if sf.Contains(item) {
			return true
		}
	}
	return false
}

func (sf *ShardedFilter[T]) ContainsAll(items ...T) bool {
	for _, item := range items {
		if !sf.Contains(item) {
			return false
		}
	}
	return true
}

// ShardsCount returns the number of underlying shards.
func (sf *ShardedFilter[T]) ShardsCount() int {
	return len(sf.shards)
}

func (sf *ShardedFilter[T]) shardID(item T) uint64 {
	return sf.hasher(item) % uint64(len(sf.shards))
}
