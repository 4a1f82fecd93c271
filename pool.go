package pretender

// Pool recycles instances of T. Obtain pops a released instance or builds a
// new one; Release pushes an instance back. The pool never shrinks and never
// refuses: demand beyond the free list grows it without bound.
//
// Pools are owned by the subsystem that uses them. Nothing about an obtained
// instance is reset by the pool; callers reassign every field they rely on.
type Pool[T any] struct {
	newFn   func() T
	free    []T
	created int
}

// NewPool creates a pool that constructs fresh instances with newFn.
func NewPool[T any](newFn func() T) *Pool[T] {
	if newFn == nil {
		panic("pretender: pool requires a constructor")
	}
	return &Pool[T]{newFn: newFn}
}

// Obtain returns a recycled instance if one is available, otherwise a new one.
func (p *Pool[T]) Obtain() T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
		return v
	}
	p.created++
	return p.newFn()
}

// Release returns v to the pool for reuse.
func (p *Pool[T]) Release(v T) {
	p.free = append(p.free, v)
}

// Free returns the number of instances waiting for reuse.
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Created returns how many instances the pool has constructed in total.
func (p *Pool[T]) Created() int {
	return p.created
}
