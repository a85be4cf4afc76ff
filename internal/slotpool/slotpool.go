// Package slotpool provides the resolver's shard pool: a process-lifetime,
// growth-only collection of fixed-capacity LRU slots, each leased to one
// goroutine at a time.
//
// Leasing never blocks. A lease walks the registered slots and takes the
// first one whose try-lock succeeds; when every slot is held, a fresh slot
// is allocated, registered and returned already leased. This bounds
// worst-case lease latency to one allocation instead of waiting on a lock,
// and it is the reason a leased slot needs no synchronization of its own:
// exclusivity comes from the lease, not from per-entry locks.
//
// Slots are registered forever. The pool's population is bounded by the
// peak number of concurrent leases and is never shrunk; leaking a handful
// of fixed-size shards for the process lifetime is the accepted cost of a
// wait-free lease path.
//
// The registry is a singly linked list rooted at an atomic pointer. Slots
// are only ever pushed, never unlinked, so the publish CAS loop has no ABA
// hazard; a free-list that recycled nodes through pop/push would.
package slotpool

import (
	"sync/atomic"
)

// DefaultCapacity is the per-slot entry bound used when Opts.Capacity is
// not set.
const DefaultCapacity = 128

// Opts configures a Pool.
type Opts struct {
	// Capacity is the per-slot entry bound. DefaultCapacity when <= 0.
	Capacity int
	// OnAlloc is invoked each time the pool grows by one slot. Optional.
	OnAlloc func()
}

// Pool hands out exclusive slots. Safe for concurrent use by any number of
// goroutines.
type Pool[E any] struct {
	head     atomic.Pointer[Slot[E]]
	size     atomic.Int64
	capacity int
	onAlloc  func()
}

// New creates an empty pool. Slots are allocated lazily on first use.
func New[E any](opts Opts) *Pool[E] {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	return &Pool[E]{
		capacity: opts.Capacity,
		onAlloc:  opts.OnAlloc,
	}
}

// Lease returns a slot held exclusively by the caller. It never blocks:
// registered slots are probed with try-locks and, if all of them are held,
// a new slot is allocated. Call [Slot.Release] exactly once when done, on
// every path.
func (p *Pool[E]) Lease() *Slot[E] {
	for s := p.head.Load(); s != nil; s = s.next.Load() {
		if s.mu.TryLock() {
			return s
		}
	}

	s := newSlot[E](p.capacity)
	s.mu.Lock()
	p.register(s)
	if p.onAlloc != nil {
		p.onAlloc()
	}
	return s
}

// register publishes s on the registry list.
func (p *Pool[E]) register(s *Slot[E]) {
	for {
		head := p.head.Load()
		s.next.Store(head)
		if p.head.CompareAndSwap(head, s) {
			p.size.Add(1)
			return
		}
	}
}

// Size returns the number of slots registered so far.
func (p *Pool[E]) Size() int { return int(p.size.Load()) }
