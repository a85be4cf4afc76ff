package slotpool

import (
	"sync"
	"sync/atomic"
)

// Slot is one bounded LRU shard. All methods except Release assume the
// caller holds the lease; nothing inside a slot is otherwise synchronized.
//
// The LRU is an intrusive doubly linked list with sentinel head/tail
// nodes. Evictions recycle the displaced node in place, so a slot performs
// no allocations once it has filled up.
type Slot[E any] struct {
	next atomic.Pointer[Slot[E]] // registry link, written once on publish
	mu   sync.Mutex

	capacity   int
	size       int
	head, tail node[E]
}

type node[E any] struct {
	prev, next *node[E]
	val        E
}

func newSlot[E any](capacity int) *Slot[E] {
	s := &Slot[E]{capacity: capacity}
	s.head.next = &s.tail
	s.tail.prev = &s.head
	return s
}

// Release returns the slot to the pool. The caller must not touch the slot
// afterwards.
func (s *Slot[E]) Release() { s.mu.Unlock() }

// Find scans entries most-recently-used first and promotes the first match
// to the front. It returns nil when nothing matches. The returned pointer
// is valid until the next Insert on this slot.
func (s *Slot[E]) Find(match func(*E) bool) *E {
	for n := s.head.next; n != &s.tail; n = n.next {
		if match(&n.val) {
			s.moveToFront(n)
			return &n.val
		}
	}
	return nil
}

// Insert puts val at the front. When the slot is full the least recently
// used entry is displaced and returned with evicted=true.
func (s *Slot[E]) Insert(val E) (old E, evicted bool) {
	if s.size >= s.capacity {
		n := s.tail.prev
		s.moveToFront(n)
		old, evicted = n.val, true
		n.val = val
		return old, evicted
	}

	n := &node[E]{val: val}
	n.prev = &s.head
	n.next = s.head.next
	n.prev.next = n
	n.next.prev = n
	s.size++
	return old, false
}

// Len reports the number of entries currently cached.
func (s *Slot[E]) Len() int { return s.size }

func (s *Slot[E]) moveToFront(n *node[E]) {
	if s.head.next == n {
		return
	}
	n.prev.next = n.next
	n.next.prev = n.prev

	n.prev = &s.head
	n.next = s.head.next
	n.prev.next = n
	n.next.prev = n
}
