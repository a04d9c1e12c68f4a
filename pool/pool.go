// Package pool implements a pooled-class mixin: a bounded object pool
// with Get/Release semantics for hot objects (synthetic events,
// transactions, bookkeeping records). Written the way Go idiomatically
// expresses a bounded free-list (a slice-backed pool, not sync.Pool,
// because sync.Pool gives no delivery guarantee and callers here need a
// bounded, deterministic cap and an explicit destructor on release).
package pool

// DefaultCap is the default pool size.
const DefaultCap = 10

// Resettable is implemented by pointers to pooled types: Destructor nulls
// out fields so a released object never leaks a reference into the next
// acquirer.
type Resettable interface {
	Destructor()
}

// Pool is a bounded free-list of *T; PT is *T and must be Resettable, so a
// pointer-receiver Destructor qualifies. Acquire/release must happen on the
// same synchronous call stack that uses the object — handing a pooled
// object to a callback that outlives the dispatch is a misuse Pool does
// nothing to prevent at runtime, matching the single-threaded discipline
// the rest of the runtime relies on.
type Pool[T any, PT interface {
	*T
	Resettable
}] struct {
	cap   int
	free  []*T
	newFn func() *T
}

// New creates a Pool with the given capacity and constructor.
func New[T any, PT interface {
	*T
	Resettable
}](capacity int, newFn func() *T) *Pool[T, PT] {
	if capacity <= 0 {
		capacity = DefaultCap
	}
	return &Pool[T, PT]{cap: capacity, newFn: newFn}
}

// Get returns a recycled instance if one is free, otherwise allocates a
// new one via newFn. init is called on the object (new or recycled)
// before it is handed back, mirroring getPooled(args...) re-initialising
// via the type's constructor.
func (p *Pool[T, PT]) Get(init func(*T)) *T {
	var v *T
	if n := len(p.free); n > 0 {
		v = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		v = p.newFn()
	}
	if init != nil {
		init(v)
	}
	return v
}

// Release destructs v and, if the pool is under capacity, returns it to
// the free list for reuse.
func (p *Pool[T, PT]) Release(v *T) {
	PT(v).Destructor()
	if len(p.free) < p.cap {
		p.free = append(p.free, v)
	}
}

// Len reports how many instances currently sit idle in the pool, for
// tests that assert release/reuse behavior.
func (p *Pool[T, PT]) Len() int { return len(p.free) }
