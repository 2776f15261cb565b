package bloom

import (
	"sync"
)

// GuardedFilter serializes access to a Filter with a mutex. The core
// Filter deliberately carries no locking of its own; this wrapper is the
// supported way to share one instance between goroutines.
type GuardedFilter[T any] struct {
	filter *Filter[T]
	mutex  *sync.Mutex
}

// NewGuarded wraps an already constructed filter.
func NewGuarded[T any](filter *Filter[T]) *GuardedFilter[T] {
	return &GuardedFilter[T]{
		filter: filter,
		mutex:  &sync.Mutex{},
	}
}

func (g *GuardedFilter[T]) Add(item T) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.filter.Add(item)
}

func (g *GuardedFilter[T]) Contains(item T) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.filter.Contains(item)
}

func (g *GuardedFilter[T]) ContainsAny(items ...T) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.filter.ContainsAny(items...)
}

func (g *GuardedFilter[T]) ContainsAll(items ...T) bool {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.filter.ContainsAll(items...)
}

func (g *GuardedFilter[T]) FalsePositiveProbability() float64 {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.filter.FalsePositiveProbability()
}
