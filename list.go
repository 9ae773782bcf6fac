package slotlist

import "fmt"

// InsertAfter links v into the ring right after anchor and returns its slot.
// The anchor must be the sentinel or a live slot.
func (l *List[T]) InsertAfter(anchor Slot, v T) (Slot, error) {
	l.mustAnchor(anchor, "insert after")
	l.checkDebug("insert after")
	return l.insertAfter(anchor, v)
}

// InsertBefore links v into the ring right before anchor and returns its slot.
// The anchor must be the sentinel or a live slot.
func (l *List[T]) InsertBefore(anchor Slot, v T) (Slot, error) {
	l.mustAnchor(anchor, "insert before")
	l.checkDebug("insert before")
	return l.insertAfter(l.prev[anchor], v)
}

// PushFront inserts v at the head.
func (l *List[T]) PushFront(v T) (Slot, error) {
	l.mustOpen()
	l.checkDebug("push front")
	return l.insertAfter(Sentinel, v)
}

// PushBack inserts v at the tail.
func (l *List[T]) PushBack(v T) (Slot, error) {
	l.mustOpen()
	l.checkDebug("push back")
	return l.insertAfter(l.prev[Sentinel], v)
}

func (l *List[T]) insertAfter(at Slot, v T) (Slot, error) {
	wasEmpty := l.size == 0
	atHead := at == Sentinel
	atTail := at == l.prev[Sentinel]

	s, err := l.acquire()
	if err != nil {
		return Sentinel, err
	}

	l.values[s] = v
	nx := l.next[at]
	l.prev[s], l.next[s] = at, nx
	l.next[at] = s
	l.prev[nx] = s
	l.size++

	switch {
	case wasEmpty:
		l.sorted, l.shift = true, s-1
	case !l.sorted:
	case atTail && s == l.shift+Slot(l.size):
		// extends the run at the tail
	case atHead && s == l.shift:
		l.shift--
	default:
		l.sorted = false
	}
	return s, nil
}

// Remove unlinks the element at s, frees its slot and returns its value.
func (l *List[T]) Remove(s Slot) T {
	l.mustLive(s, "remove")
	l.checkDebug("remove")
	return l.remove(s)
}

// PopFront removes and returns the head element.
func (l *List[T]) PopFront() (T, error) {
	l.mustOpen()
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	l.checkDebug("pop front")
	return l.remove(l.next[Sentinel]), nil
}

// PopBack removes and returns the tail element.
func (l *List[T]) PopBack() (T, error) {
	l.mustOpen()
	if l.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	l.checkDebug("pop back")
	return l.remove(l.prev[Sentinel]), nil
}

func (l *List[T]) remove(s Slot) T {
	v := l.values[s]
	p, n := l.prev[s], l.next[s]
	isHead, isTail := p == Sentinel, n == Sentinel

	l.next[p] = n
	l.prev[n] = p
	l.size--
	l.release(s)

	switch {
	case l.size == 0:
		l.sorted, l.shift = true, 0
	case !l.sorted:
	case isHead:
		l.shift++
	case isTail:
	default:
		l.sorted = false
	}
	return v
}

// Get returns a copy of the element at s.
func (l *List[T]) Get(s Slot) T {
	l.mustLive(s, "get")
	return l.values[s]
}

// Set overwrites the element at s without touching the ring.
func (l *List[T]) Set(s Slot, v T) {
	l.mustLive(s, "set")
	l.checkDebug("set")
	l.values[s] = v
}

// Next returns the ring successor of s. The successor of the tail, and of
// the sentinel in an empty list, is the sentinel.
func (l *List[T]) Next(s Slot) Slot {
	l.mustAnchor(s, "next")
	return l.next[s]
}

// Prev returns the ring predecessor of s.
func (l *List[T]) Prev(s Slot) Slot {
	l.mustAnchor(s, "prev")
	return l.prev[s]
}

// Head returns the first slot, or Sentinel if the list is empty.
func (l *List[T]) Head() Slot {
	l.mustOpen()
	return l.next[Sentinel]
}

// Tail returns the last slot, or Sentinel if the list is empty.
func (l *List[T]) Tail() Slot {
	l.mustOpen()
	return l.prev[Sentinel]
}

// IndexToSlot maps the zero-based logical position k to its slot. It is O(1)
// while the list is sorted and a ring walk from the nearer end otherwise.
func (l *List[T]) IndexToSlot(k int) Slot {
	l.mustOpen()
	if k < 0 || k >= l.size {
		panic(fmt.Sprintf("slotlist: index %d out of range [0, %d)", k, l.size))
	}
	if l.sorted {
		return l.shift + Slot(k) + 1
	}

	if k < l.size/2 {
		s := l.next[Sentinel]
		for range k {
			s = l.next[s]
		}
		return s
	}
	s := l.prev[Sentinel]
	for range l.size - 1 - k {
		s = l.prev[s]
	}
	return s
}

// At returns a copy of the element at logical position k.
func (l *List[T]) At(k int) T {
	return l.values[l.IndexToSlot(k)]
}
