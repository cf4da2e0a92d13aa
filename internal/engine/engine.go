package engine

import "sync/atomic"

// Engine holds the search state of one caller. The root search hands every
// child to its own local Engine, so an Engine is never shared across goroutines.
type Engine struct {
	tt    map[uint64]ttEntry
	nodes int64
}

func NewEngine() *Engine {
	return &Engine{
		tt: make(map[uint64]ttEntry, 1<<16),
	}
}

// newLocal creates the per-goroutine engine used below the root.
func newLocal() *Engine {
	return &Engine{
		tt: make(map[uint64]ttEntry, 1<<12),
	}
}

// Nodes returns the number of positions visited by the last search.
func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}
