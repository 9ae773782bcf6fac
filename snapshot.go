package slotlist

// Snapshot is a read-only copy of the arena for rendering and diagnostics.
// It shares no memory with the list.
type Snapshot[T any] struct {
	Reserved int
	Capacity int
	Size     int
	FreeHead Slot // Sentinel when the pool is empty
	FreeBack Slot // Sentinel when the pool is empty
	Sorted   bool
	Shift    Slot

	// Indexed by slot, Capacity+1 entries each. Prev of a free slot is
	// meaningless and reported as Sentinel.
	Values []T
	Prev   []Slot
	Next   []Slot
	States []SlotState
}

// Snapshot copies the current arena.
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mustOpen()

	n := len(l.next)
	snap := Snapshot[T]{
		Reserved: l.reserved,
		Capacity: l.capacity,
		Size:     l.size,
		FreeHead: l.freeHead,
		FreeBack: l.freeBack,
		Sorted:   l.sorted,
		Shift:    l.shift,
		Values:   make([]T, n),
		Prev:     make([]Slot, n),
		Next:     append([]Slot(nil), l.next...),
		States:   make([]SlotState, n),
	}
	copy(snap.Values, l.values)
	for i := range n {
		s := Slot(i)
		switch {
		case s == Sentinel:
			snap.States[i] = StateSentinel
			snap.Prev[i] = l.prev[i]
		case l.isFree(s):
			snap.States[i] = StateFree
		default:
			snap.States[i] = StateLive
			snap.Prev[i] = l.prev[i]
		}
	}
	return snap
}

// Order returns the slots of the live ring from head to tail.
func (s Snapshot[T]) Order() []Slot {
	out := make([]Slot, 0, s.Size)
	for cur := s.Next[Sentinel]; cur != Sentinel && len(out) < len(s.Next); cur = s.Next[cur] {
		out = append(out, cur)
	}
	return out
}

// FreeChain returns the slots of the free pool in reuse order.
func (s Snapshot[T]) FreeChain() []Slot {
	free := s.Capacity - s.Size
	if free <= 0 {
		return nil
	}
	out := make([]Slot, 0, free)
	for cur := s.FreeHead; cur != Sentinel && len(out) < free; cur = s.Next[cur] {
		out = append(out, cur)
	}
	return out
}
