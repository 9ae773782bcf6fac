package slotlist

import (
	"errors"
	"fmt"
)

// Grow enlarges the arena to newCapacity slots and appends the new slots to
// the free pool. It panics if newCapacity does not exceed Cap. On failure the
// list is unchanged and the error wraps ErrOutOfMemory.
func (l *List[T]) Grow(newCapacity int) error {
	l.mustOpen()
	if newCapacity <= l.capacity {
		panic(fmt.Sprintf("slotlist: grow: new capacity %d must exceed current %d", newCapacity, l.capacity))
	}
	l.checkDebug("grow")
	return l.grow(newCapacity)
}

// growOnExhaustion doubles the capacity (0 grows to 1), clamped to the limit.
func (l *List[T]) growOnExhaustion() error {
	target := max(l.capacity*2, 1)
	if l.capacity > l.maxCap/2 {
		target = l.maxCap
	}
	if target <= l.capacity {
		l.stats.GrowFailures++
		err := fmt.Errorf("slotlist: arena full at %d slots: %w", l.capacity, ErrOutOfMemory)
		l.log.Error("slotlist: failed to grow", "capacity", l.capacity, "err", err)
		return err
	}
	return l.grow(target)
}

func (l *List[T]) grow(newCapacity int) error {
	if newCapacity > l.maxCap {
		l.stats.GrowFailures++
		err := fmt.Errorf("slotlist: grow to %d slots (limit %d): %w", newCapacity, l.maxCap, ErrOutOfMemory)
		l.log.Error("slotlist: failed to grow", "capacity", l.capacity, "requested", newCapacity, "err", err)
		return err
	}

	prev, next, err := l.allocLinks(newCapacity + 1)
	if err != nil {
		l.stats.GrowFailures++
		err = fmt.Errorf("slotlist: grow to %d slots: %w", newCapacity, err)
		l.log.Error("slotlist: failed to grow", "capacity", l.capacity, "requested", newCapacity, "err", err)
		return err
	}
	copy(prev.Words(), l.prev)
	copy(next.Words(), l.next)
	values := make([]T, newCapacity+1)
	copy(values, l.values)

	// Everything is allocated; from here on the swap cannot fail.
	oldPrev, oldNext := l.prevBlk, l.nextBlk
	oldCapacity := l.capacity
	l.install(prev, next)
	l.values = values
	l.capacity = newCapacity
	l.linkFree(Slot(oldCapacity+1), Slot(newCapacity))

	if err := errors.Join(oldPrev.Release(), oldNext.Release()); err != nil {
		l.log.Warn("slotlist: release old linkage", "err", err)
	}
	l.stats.Grows++
	l.log.Debug("slotlist: grew arena", "from", oldCapacity, "to", newCapacity, "size", l.size)
	return nil
}
