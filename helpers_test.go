package slotlist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// newIntList creates a list that must verify and close cleanly at test end.
func newIntList(t *testing.T, reserved int, opts *Options) *List[int] {
	t.Helper()
	l, err := New[int](reserved, opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, l.Close(), "list should close cleanly")
	})
	return l
}

// newCorruptible creates a list whose Close error is ignored.
func newCorruptible(t *testing.T, reserved int, opts *Options) *List[int] {
	t.Helper()
	l, err := New[int](reserved, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

// pushBack appends values and returns their slots.
func pushBack(t *testing.T, l *List[int], vals ...int) []Slot {
	t.Helper()
	slots := make([]Slot, 0, len(vals))
	for _, v := range vals {
		s, err := l.PushBack(v)
		require.NoError(t, err)
		slots = append(slots, s)
	}
	return slots
}

// contents returns the list values from head to tail.
func contents(l *List[int]) []int {
	return slices.Collect(l.Values())
}

// requireValid fails if any invariant is violated.
func requireValid(t require.TestingT, l *List[int]) {
	f := l.Verify()
	require.Zero(t, f, "invariants violated: %s", f)
}

// recoverCorruption runs fn and returns the *CorruptionError it panicked with.
func recoverCorruption(t *testing.T, fn func()) (ce *CorruptionError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		ce, ok = r.(*CorruptionError)
		require.True(t, ok, "panic value %T is not *CorruptionError", r)
	}()
	fn()
	return nil
}
