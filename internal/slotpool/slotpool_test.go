package slotpool

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlot_InsertFind(t *testing.T) {
	p := New[int](Opts{Capacity: 4})
	s := p.Lease()
	defer s.Release()

	s.Insert(1)
	s.Insert(2)

	v := s.Find(func(e *int) bool { return *e == 1 })
	require.NotNil(t, v)
	require.Equal(t, 1, *v)

	require.Nil(t, s.Find(func(e *int) bool { return *e == 3 }))
	require.Equal(t, 2, s.Len())
}

func TestSlot_EvictsLRU(t *testing.T) {
	p := New[int](Opts{Capacity: 2})
	s := p.Lease()
	defer s.Release()

	s.Insert(1)
	s.Insert(2)

	old, evicted := s.Insert(3)
	require.True(t, evicted)
	require.Equal(t, 1, old)
	require.Equal(t, 2, s.Len())

	require.Nil(t, s.Find(func(e *int) bool { return *e == 1 }))
	require.NotNil(t, s.Find(func(e *int) bool { return *e == 2 }))
	require.NotNil(t, s.Find(func(e *int) bool { return *e == 3 }))
}

func TestSlot_FindPromotes(t *testing.T) {
	p := New[int](Opts{Capacity: 2})
	s := p.Lease()
	defer s.Release()

	s.Insert(1)
	s.Insert(2)

	// Promote 1; then 2 is the LRU and gets displaced next.
	require.NotNil(t, s.Find(func(e *int) bool { return *e == 1 }))

	old, evicted := s.Insert(3)
	require.True(t, evicted)
	require.Equal(t, 2, old)
	require.NotNil(t, s.Find(func(e *int) bool { return *e == 1 }))
}

func TestSlot_DefaultCapacity(t *testing.T) {
	p := New[int](Opts{})
	s := p.Lease()
	defer s.Release()

	for i := 0; i < DefaultCapacity+10; i++ {
		s.Insert(i)
	}
	require.Equal(t, DefaultCapacity, s.Len())
}

func TestPool_LeaseAllocatesWhenContended(t *testing.T) {
	p := New[int](Opts{Capacity: 4})

	s1 := p.Lease()
	s2 := p.Lease()
	require.NotSame(t, s1, s2)
	require.Equal(t, 2, p.Size())

	s1.Release()
	s2.Release()

	// Both slots free again: a lease recycles, the pool does not grow.
	s3 := p.Lease()
	defer s3.Release()
	require.Equal(t, 2, p.Size())
	require.True(t, s3 == s1 || s3 == s2)
}

func TestPool_OnAlloc(t *testing.T) {
	var allocs atomic.Int64
	p := New[int](Opts{Capacity: 4, OnAlloc: func() { allocs.Add(1) }})

	s1 := p.Lease()
	s2 := p.Lease()
	s1.Release()
	s2.Release()

	require.Equal(t, int64(2), allocs.Load())
}

func TestPool_SlotStateSurvivesRelease(t *testing.T) {
	p := New[int](Opts{Capacity: 4})

	s := p.Lease()
	s.Insert(42)
	s.Release()

	s = p.Lease()
	defer s.Release()
	require.NotNil(t, s.Find(func(e *int) bool { return *e == 42 }))
}

func TestPool_ExclusiveLease(t *testing.T) {
	const workers = 8
	const iterations = 500

	p := New[int](Opts{Capacity: 4})

	var (
		guards   sync.Map // *Slot[int] -> *atomic.Int32
		leases   atomic.Int64
		releases atomic.Int64
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				s := p.Lease()
				leases.Add(1)

				g, _ := guards.LoadOrStore(s, new(atomic.Int32))
				guard := g.(*atomic.Int32)
				if guard.Add(1) != 1 {
					t.Errorf("slot leased by two goroutines at once")
				}

				s.Insert(w*iterations + i)
				s.Find(func(e *int) bool { return *e == w })

				guard.Add(-1)
				s.Release()
				releases.Add(1)
			}
		}(w)
	}
	wg.Wait()

	require.Equal(t, leases.Load(), releases.Load())
	require.Equal(t, int64(workers*iterations), leases.Load())
	require.LessOrEqual(t, p.Size(), workers)
}
