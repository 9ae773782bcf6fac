package slotlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Empty tests that a fresh list is empty, sorted and valid.
func TestNew_Empty(t *testing.T) {
	for _, reserved := range []int{0, 1, 10} {
		l := newIntList(t, reserved, nil)

		require.Equal(t, 0, l.Len())
		require.Equal(t, reserved, l.Cap())
		require.Equal(t, reserved, l.Reserved())
		require.True(t, l.IsSorted())
		require.Equal(t, Sentinel, l.Head())
		require.Equal(t, Sentinel, l.Tail())
		require.Equal(t, Sentinel, l.Next(Sentinel))
		require.Equal(t, Sentinel, l.Prev(Sentinel))
		requireValid(t, l)
	}
}

// TestNew_NegativeReservedPanics tests the reserved-capacity precondition.
func TestNew_NegativeReservedPanics(t *testing.T) {
	require.Panics(t, func() { _, _ = New[int](-1, nil) })
}

// TestPushGet tests that a pushed value can be read back through its slot.
func TestPushGet(t *testing.T) {
	l := newIntList(t, 0, nil)

	s, err := l.PushFront(228)
	require.NoError(t, err)
	require.Equal(t, 228, l.Get(s))
	requireValid(t, l)
}

// TestPushPop covers a push/pop sequence mixing ends and slots.
func TestPushPop(t *testing.T) {
	l := newIntList(t, 0, nil)

	first, err := l.PushFront(1)
	require.NoError(t, err)
	_, err = l.PushFront(2)
	require.NoError(t, err)
	_, err = l.PushFront(3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, contents(l))

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	require.Equal(t, 1, l.Remove(first))

	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	require.Equal(t, 0, l.Len())
	requireValid(t, l)
}

// TestScenario_GrowFromZero tests push_back(1), push_back(2), push_front(0) from capacity 0.
func TestScenario_GrowFromZero(t *testing.T) {
	l := newIntList(t, 0, nil)

	pushBack(t, l, 1, 2)
	require.True(t, l.IsSorted())

	_, err := l.PushFront(0)
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, contents(l))
	require.False(t, l.IsSorted(), "slot for 0 was allocated after 1 and 2")
	requireValid(t, l)
}

// TestScenario_ForcedGrowth tests that a third push into capacity 2 grows the arena.
func TestScenario_ForcedGrowth(t *testing.T) {
	l := newIntList(t, 2, nil)

	pushBack(t, l, 1, 2, 3)

	require.Equal(t, 3, l.Len())
	require.GreaterOrEqual(t, l.Cap(), 3)
	require.Equal(t, 4, l.Cap(), "capacity doubles")
	requireValid(t, l)
}

// TestScenario_FIFODrain tests that pop_front returns pushed values in order.
func TestScenario_FIFODrain(t *testing.T) {
	l := newIntList(t, 0, nil)
	pushBack(t, l, 0, 1, 2, 3)

	for want := range 4 {
		v, err := l.PopFront()
		require.NoError(t, err)
		require.Equal(t, want, v)
		requireValid(t, l)
	}
	require.Equal(t, 0, l.Len())
	require.Equal(t, Sentinel, l.Head())
}

// TestPushBackPopBack_RoundTrip tests that push_back then pop_back restores the list.
func TestPushBackPopBack_RoundTrip(t *testing.T) {
	l := newIntList(t, 4, nil)
	pushBack(t, l, 10, 20)

	_, err := l.PushBack(42)
	require.NoError(t, err)
	v, err := l.PopBack()
	require.NoError(t, err)

	require.Equal(t, 42, v)
	require.Equal(t, 2, l.Len())
	require.Equal(t, []int{10, 20}, contents(l))
	requireValid(t, l)
}

// TestPop_Empty tests that pops on an empty list report ErrEmpty.
func TestPop_Empty(t *testing.T) {
	l := newIntList(t, 2, nil)

	_, err := l.PopFront()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = l.PopBack()
	require.ErrorIs(t, err, ErrEmpty)
	requireValid(t, l)
}

// TestInsertAfterBefore tests splicing next to live slots and the sentinel.
func TestInsertAfterBefore(t *testing.T) {
	l := newIntList(t, 0, nil)

	slots := pushBack(t, l, 1, 4)
	two, err := l.InsertAfter(slots[0], 2)
	require.NoError(t, err)
	_, err = l.InsertBefore(slots[1], 3)
	require.NoError(t, err)
	_, err = l.InsertBefore(Sentinel, 5) // before the sentinel is the tail
	require.NoError(t, err)
	_, err = l.InsertAfter(Sentinel, 0) // after the sentinel is the head
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, contents(l))
	require.Equal(t, slots[0], l.Prev(two))
	require.Equal(t, 0, l.Get(l.Head()))
	require.Equal(t, 5, l.Get(l.Tail()))
	require.Equal(t, Sentinel, l.Next(l.Tail()))
	require.Equal(t, Sentinel, l.Prev(l.Head()))
	requireValid(t, l)
}

// TestSet tests overwriting a payload in place.
func TestSet(t *testing.T) {
	l := newIntList(t, 0, nil)
	slots := pushBack(t, l, 1, 2, 3)

	l.Set(slots[1], 20)
	require.Equal(t, []int{1, 20, 3}, contents(l))
	require.True(t, l.IsSorted())
}

// TestGet_ReturnsCopy tests that callers never alias internal storage.
func TestGet_ReturnsCopy(t *testing.T) {
	l, err := New[[]int](0, nil)
	require.NoError(t, err)
	defer l.Close()

	s, err := l.PushBack([]int{1, 2})
	require.NoError(t, err)

	type pair struct{ a, b int }
	p, err := New[pair](0, nil)
	require.NoError(t, err)
	defer p.Close()

	ps, err := p.PushBack(pair{1, 2})
	require.NoError(t, err)
	got := p.Get(ps)
	got.a = 99
	require.Equal(t, pair{1, 2}, p.Get(ps))

	// Growth reallocates the payload buffer without disturbing values.
	for i := range 16 {
		_, err := l.PushBack([]int{i})
		require.NoError(t, err)
	}
	require.Equal(t, []int{1, 2}, l.Get(s))
}

// TestSorted_PushBackSequence tests O(1) positional access after consecutive appends.
func TestSorted_PushBackSequence(t *testing.T) {
	l := newIntList(t, 0, nil)
	const n = 37
	for i := range n {
		_, err := l.PushBack(i * 10)
		require.NoError(t, err)
	}

	require.True(t, l.IsSorted())
	for k := range n {
		require.Equal(t, Slot(k+1), l.IndexToSlot(k))
		require.Equal(t, k*10, l.At(k))
	}
	requireValid(t, l)
}

// TestSorted_RemoveMiddle tests that removing an interior element clears the flag.
func TestSorted_RemoveMiddle(t *testing.T) {
	l := newIntList(t, 0, nil)
	slots := pushBack(t, l, 0, 1, 2, 3, 4)

	require.Equal(t, 2, l.Remove(slots[2]))
	require.False(t, l.IsSorted())
	require.Equal(t, []int{0, 1, 3, 4}, contents(l))
	for k, want := range []int{0, 1, 3, 4} {
		require.Equal(t, want, l.At(k))
	}
	requireValid(t, l)
}

// TestSorted_PopFrontShifts tests that popping the head keeps O(1) access correct.
func TestSorted_PopFrontShifts(t *testing.T) {
	l := newIntList(t, 0, nil)
	pushBack(t, l, 0, 1, 2, 3, 4)

	_, err := l.PopFront()
	require.NoError(t, err)
	_, err = l.PopFront()
	require.NoError(t, err)

	require.True(t, l.IsSorted())
	require.Equal(t, Slot(3), l.IndexToSlot(0))
	for k, want := range []int{2, 3, 4} {
		require.Equal(t, want, l.At(k))
	}
	requireValid(t, l)
}

// TestSorted_PopBackKeepsFlag tests that popping the tail keeps the list sorted.
func TestSorted_PopBackKeepsFlag(t *testing.T) {
	l := newIntList(t, 0, nil)
	pushBack(t, l, 0, 1, 2, 3)

	_, err := l.PopBack()
	require.NoError(t, err)
	require.True(t, l.IsSorted())
	require.Equal(t, 2, l.At(2))
	requireValid(t, l)
}

// TestSorted_PushAfterPopBack tests that a reused tail slot may break contiguity.
func TestSorted_PushAfterPopBack(t *testing.T) {
	l := newIntList(t, 4, nil)
	pushBack(t, l, 1, 2, 3)

	_, err := l.PopBack()
	require.NoError(t, err)

	// The pool is FIFO, so slot 4 is handed out before the just-freed slot 3.
	s, err := l.PushBack(9)
	require.NoError(t, err)
	require.Equal(t, Slot(4), s)
	require.False(t, l.IsSorted())
	require.Equal(t, 9, l.At(2))
	requireValid(t, l)
}

// TestSorted_PushFrontExtendsRun tests prepending the slot just below a shifted run.
func TestSorted_PushFrontExtendsRun(t *testing.T) {
	l := newIntList(t, 3, nil)
	pushBack(t, l, 1, 2, 3)

	_, err := l.PopFront()
	require.NoError(t, err)

	s, err := l.PushFront(0)
	require.NoError(t, err)
	require.Equal(t, Slot(1), s)
	require.True(t, l.IsSorted())
	require.Equal(t, Slot(1), l.IndexToSlot(0))
	require.Equal(t, []int{0, 2, 3}, contents(l))
	requireValid(t, l)
}

// TestSorted_EmptyAgain tests that draining the list resets sortedness.
func TestSorted_EmptyAgain(t *testing.T) {
	l := newIntList(t, 0, nil)
	slots := pushBack(t, l, 1, 2, 3)
	l.Remove(slots[1])
	require.False(t, l.IsSorted())

	l.Remove(slots[0])
	l.Remove(slots[2])
	require.True(t, l.IsSorted())

	s, err := l.PushBack(7)
	require.NoError(t, err)
	require.True(t, l.IsSorted())
	require.Equal(t, s, l.IndexToSlot(0))
	requireValid(t, l)
}

// TestIndexToSlot_Unsorted tests ring walks from both ends.
func TestIndexToSlot_Unsorted(t *testing.T) {
	l := newIntList(t, 0, nil)
	pushBack(t, l, 1, 2, 3, 4, 5, 6)
	_, err := l.PushFront(0)
	require.NoError(t, err)
	require.False(t, l.IsSorted())

	for k, want := range []int{0, 1, 2, 3, 4, 5, 6} {
		assert.Equal(t, want, l.At(k), "position %d", k)
	}
}

// TestIndexToSlot_OutOfRangePanics tests the positional precondition.
func TestIndexToSlot_OutOfRangePanics(t *testing.T) {
	l := newIntList(t, 0, nil)
	pushBack(t, l, 1)

	require.Panics(t, func() { l.IndexToSlot(1) })
	require.Panics(t, func() { l.IndexToSlot(-1) })
}

// TestPreconditions tests that invalid slots fail fast.
func TestPreconditions(t *testing.T) {
	l := newIntList(t, 4, nil)
	slots := pushBack(t, l, 1, 2)

	require.PanicsWithValue(t, "slotlist: remove: sentinel slot holds no element", func() {
		l.Remove(Sentinel)
	})
	require.PanicsWithValue(t, "slotlist: get: slot 9 out of range [1, 4]", func() {
		l.Get(9)
	})
	require.PanicsWithValue(t, "slotlist: get: slot 3 is free", func() {
		l.Get(3)
	})
	require.Panics(t, func() { _, _ = l.InsertAfter(4, 0) })
	require.Panics(t, func() { l.Next(3) })

	l.Remove(slots[0])
	require.PanicsWithValue(t, "slotlist: remove: slot 1 is free", func() {
		l.Remove(slots[0])
	})
	requireValid(t, l)
}

// TestRelease_DoublePanics tests the allocator's double-release guard.
func TestRelease_DoublePanics(t *testing.T) {
	l := newIntList(t, 2, nil)
	require.PanicsWithValue(t, "slotlist: release: double release of slot 1", func() {
		l.release(1)
	})
	require.Panics(t, func() { l.release(Sentinel) })
}

// TestFreePool_FIFO tests that the least recently freed slot is reused first.
func TestFreePool_FIFO(t *testing.T) {
	l := newIntList(t, 4, nil)
	slots := pushBack(t, l, 1, 2, 3, 4)

	l.Remove(slots[2])
	l.Remove(slots[0])

	s, err := l.PushBack(5)
	require.NoError(t, err)
	require.Equal(t, slots[2], s)
	s, err = l.PushBack(6)
	require.NoError(t, err)
	require.Equal(t, slots[0], s)
	requireValid(t, l)
}

// TestClose tests release and use-after-close behavior.
func TestClose(t *testing.T) {
	l, err := New[int](4, nil)
	require.NoError(t, err)
	pushBack(t, l, 1, 2)

	require.NoError(t, l.Close())
	require.NoError(t, l.Close(), "second close is a no-op")
	require.PanicsWithValue(t, "slotlist: use of closed list", func() { _, _ = l.PushBack(3) })
	require.Panics(t, func() { l.Verify() })
}

// TestIterators tests forward and backward iteration, early exit and removal.
func TestIterators(t *testing.T) {
	l := newIntList(t, 0, nil)
	pushBack(t, l, 1, 2, 3, 4)

	var back []int
	for _, v := range l.Backward() {
		back = append(back, v)
	}
	require.Equal(t, []int{4, 3, 2, 1}, back)

	var firstTwo []int
	for _, v := range l.All() {
		if len(firstTwo) == 2 {
			break
		}
		firstTwo = append(firstTwo, v)
	}
	require.Equal(t, []int{1, 2}, firstTwo)

	for s, v := range l.All() {
		if v%2 == 0 {
			l.Remove(s)
		}
	}
	require.Equal(t, []int{1, 3}, contents(l))
	requireValid(t, l)
}

// TestStats tests the allocation counters.
func TestStats(t *testing.T) {
	l := newIntList(t, 1, nil)
	pushBack(t, l, 1, 2, 3)
	_, err := l.PopFront()
	require.NoError(t, err)
	l.Compact()

	st := l.Stats()
	require.Equal(t, uint64(3), st.Acquires)
	require.Equal(t, uint64(1), st.Releases)
	require.Equal(t, uint64(2), st.Grows)
	require.Equal(t, uint64(0), st.GrowFailures)
	require.Equal(t, uint64(1), st.Compactions)
}
