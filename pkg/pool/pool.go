// Package pool provides reuse containers for generated companion types.
package pool

import "sync"

// Reusable is satisfied by every generated companion: *ReusableQuote is a
// Reusable[Quote].
type Reusable[T any] interface {
	Clear()
	Build() *T
}

// Clearer is the part of a companion the Pool needs.
type Clearer interface {
	Clear()
}

// Pool is a sync.Pool of companions. Objects are cleared when they are
// returned, so Get never hands out stale field values.
type Pool[R Clearer] struct {
	pool sync.Pool
}

// New creates a Pool; newFunc is called when the pool is empty.
func New[R Clearer](newFunc func() R) *Pool[R] {
	return &Pool[R]{
		pool: sync.Pool{
			New: func() any {
				return newFunc()
			},
		},
	}
}

func (p *Pool[R]) Get() R {
	return p.pool.Get().(R)
}

// Put clears obj and returns it to the pool.
func (p *Pool[R]) Put(obj R) {
	obj.Clear()
	p.pool.Put(obj)
}
