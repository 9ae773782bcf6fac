package slotlist

import "iter"

// All yields slots and values from head to tail. Removing the slot just
// yielded is allowed; any other mutation during iteration is not.
func (l *List[T]) All() iter.Seq2[Slot, T] {
	l.mustOpen()
	return func(yield func(Slot, T) bool) {
		for s := l.next[Sentinel]; s != Sentinel; {
			nx := l.next[s]
			if !yield(s, l.values[s]) {
				return
			}
			s = nx
		}
	}
}

// Backward yields slots and values from tail to head.
func (l *List[T]) Backward() iter.Seq2[Slot, T] {
	l.mustOpen()
	return func(yield func(Slot, T) bool) {
		for s := l.prev[Sentinel]; s != Sentinel; {
			pv := l.prev[s]
			if !yield(s, l.values[s]) {
				return
			}
			s = pv
		}
	}
}

// Values yields values from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}
