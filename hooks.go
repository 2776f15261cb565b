package bloom

import (
	"sync"
)

// Stage identifies an instrumentation point inside a sharded filter.
type Stage int

const (
	Default Stage = iota
	ShardAdd
	ShardTest
)

func (s Stage) String() string {
	return [...]string{
		"Default",
		"ShardAdd",
		"ShardTest",
	}[s]
}

// Hook observes one stage. All filter operations are total, so hooks
// carry no error path.
type Hook interface {
	GetStage() Stage
	Before(args ...interface{})
	After(args ...interface{})
}

type HookImpl struct {
	Stage    Stage
	BeforeFn func(args ...interface{})
	AfterFn  func(args ...interface{})
}

func (h *HookImpl) GetStage() Stage {
	return h.Stage
}

func (h *HookImpl) Before(args ...interface{}) {
	if h.BeforeFn != nil {
		h.BeforeFn(args...)
	}
}

func (h *HookImpl) After(args ...interface{}) {
	if h.AfterFn != nil {
		h.AfterFn(args...)
	}
}

// Hooks dispatches stage notifications to registered hooks, falling back
// to a no-op for unregistered stages.
type Hooks struct {
	hooks map[Stage]Hook
	mu    *sync.RWMutex
}

func NewHooks(hooks ...Hook) *Hooks {
	hs := &Hooks{
		hooks: make(map[Stage]Hook, len(hooks)),
		mu:    &sync.RWMutex{},
	}
	for _, h := range hooks {
		hs.hooks[h.GetStage()] = h
	}
	return hs
}

func (hs *Hooks) Before(stage Stage, args ...interface{}) {
	hs.getHook(stage).Before(args...)
}

func (hs *Hooks) After(stage Stage, args ...interface{}) {
	hs.getHook(stage).After(args...)
}

func (hs *Hooks) getHook(stage Stage) Hook {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	if h, exists := hs.hooks[stage]; exists {
		return h
	}
	return noOpHookInst
}

var noOpHookInst = noOpHook{}

type noOpHook struct {
}

func (n noOpHook) GetStage() Stage {
	return Default
}

func (n noOpHook) Before(args ...interface{}) {}

func (n noOpHook) After(args ...interface{}) {}

var _ Hook = &HookImpl{}
var _ Hook = noOpHook{}
