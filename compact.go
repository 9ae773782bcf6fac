package slotlist

// Compact rebuilds the arena so that elements occupy slots 1..Len() in
// logical order and the free pool runs Len()+1..Cap() in ascending order.
// Afterwards the list is sorted and IndexToSlot is O(1). Every slot handle
// obtained before the call is invalidated.
func (l *List[T]) Compact() {
	l.mustOpen()
	l.checkDebug("compact")
	l.stats.Compactions++

	if l.sorted && l.shift == 0 {
		// Elements already sit in 1..size; only the pool order may be stale.
		l.resetFree()
		return
	}

	values := make([]T, l.capacity+1)
	i := 0
	for s := l.next[Sentinel]; s != Sentinel; s = l.next[s] {
		i++
		values[i] = l.values[s]
	}

	n := Slot(l.size)
	for s := Slot(1); s <= n; s++ {
		l.prev[s] = s - 1
		l.next[s] = s + 1
	}
	if n > 0 {
		l.next[Sentinel] = 1
		l.next[n] = Sentinel
	} else {
		l.next[Sentinel] = Sentinel
	}
	l.prev[Sentinel] = n

	l.values = values
	l.resetFree()
	l.sorted, l.shift = true, 0
}

// resetFree rebuilds the free pool from the slots above size.
func (l *List[T]) resetFree() {
	l.free = 0
	l.freeHead, l.freeBack = Sentinel, Sentinel
	l.linkFree(Slot(l.size+1), Slot(l.capacity))
}
