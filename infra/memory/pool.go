package memory

import (
	"sync"
	"sync/atomic"
)

// Pool is a typed object pool.
// Objects handed to Put are reset before they become reusable.
type Pool[T any] struct {
	p     *sync.Pool
	reset func(*T)

	gets atomic.Uint64
	puts atomic.Uint64
}

// NewPool builds a pool. ctor must not be nil; reset may be nil, in
// which case released objects are overwritten with their zero value.
func NewPool[T any](ctor func() *T, reset func(*T)) *Pool[T] {
	if ctor == nil {
		panic("memory.Pool: nil constructor")
	}
	if reset == nil {
		reset = func(v *T) {
			var zero T
			*v = zero
		}
	}
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() *T {
	p.gets.Add(1)
	return p.p.Get().(*T)
}

// Put resets v and returns it to the pool. A nil v is ignored.
func (p *Pool[T]) Put(v *T) {
	if v == nil {
		return
	}
	p.reset(v)
	p.puts.Add(1)
	p.p.Put(v)
}

// Gets reports how many objects were handed out.
func (p *Pool[T]) Gets() uint64 { return p.gets.Load() }

// Puts reports how many objects were released.
func (p *Pool[T]) Puts() uint64 { return p.puts.Load() }
