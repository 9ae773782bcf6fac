package slotlist

import "fmt"

// linkFree appends slots lo..hi, ascending, to the back of the free pool.
func (l *List[T]) linkFree(lo, hi Slot) {
	if lo == Sentinel || lo > hi {
		return
	}
	for s := lo; s < hi; s++ {
		l.prev[s] = freeTag
		l.next[s] = s + 1
	}
	l.prev[hi] = freeTag
	l.next[hi] = Sentinel

	if l.free == 0 {
		l.freeHead = lo
	} else {
		l.next[l.freeBack] = lo
	}
	l.freeBack = hi
	l.free += int(hi-lo) + 1
}

// acquire takes the least recently released slot, growing the arena first
// if the pool is empty.
func (l *List[T]) acquire() (Slot, error) {
	if l.free == 0 {
		if err := l.growOnExhaustion(); err != nil {
			return Sentinel, err
		}
	}

	s := l.freeHead
	l.freeHead = l.next[s]
	l.free--
	if l.free == 0 {
		l.freeHead, l.freeBack = Sentinel, Sentinel
	}
	l.stats.Acquires++
	return s, nil
}

// release returns a detached slot to the back of the pool. The caller must
// have unlinked it from the live ring already.
func (l *List[T]) release(s Slot) {
	if s == Sentinel || !l.inRange(s) {
		panic(fmt.Sprintf("slotlist: release: invalid slot %d", s))
	}
	if l.isFree(s) {
		panic(fmt.Sprintf("slotlist: release: double release of slot %d", s))
	}

	var zero T
	l.values[s] = zero
	l.prev[s] = freeTag
	l.next[s] = Sentinel

	if l.free == 0 {
		l.freeHead = s
	} else {
		l.next[l.freeBack] = s
	}
	l.freeBack = s
	l.free++
	l.stats.Releases++
}
