package slotlist

import (
	"math/bits"
	"strings"
)

// Flags is a set of violated structural invariants. Zero means OK.
type Flags uint32

const (
	// FlagCapacityBelowReserved: capacity < reserved.
	FlagCapacityBelowReserved Flags = 1 << iota
	// FlagSizeExceedsCapacity: size > capacity.
	FlagSizeExceedsCapacity
	// FlagArenaLength: an arena array is not capacity+1 long.
	FlagArenaLength
	// FlagSentinelFree: the sentinel is marked free.
	FlagSentinelFree
	// FlagLiveOutOfRange: a live link points outside the arena.
	FlagLiveOutOfRange
	// FlagLiveReachesFree: the live ring runs into a free slot.
	FlagLiveReachesFree
	// FlagLiveLinkBroken: prev[next[i]] != i for some slot on the live ring.
	FlagLiveLinkBroken
	// FlagLiveRingLength: the live ring does not hold exactly size slots.
	FlagLiveRingLength
	// FlagFreeCount: the pool length disagrees with capacity - size.
	FlagFreeCount
	// FlagFreeOutOfRange: a free-pool link points outside the arena.
	FlagFreeOutOfRange
	// FlagFreeNotMarked: the free pool reaches a slot not marked free.
	FlagFreeNotMarked
	// FlagFreeChainShort: the free pool ends before capacity - size slots.
	FlagFreeChainShort
	// FlagFreeUnterminated: the free pool continues past capacity - size slots.
	FlagFreeUnterminated
	// FlagFreeBackMismatch: the last pool slot is not the recorded back.
	FlagFreeBackMismatch
	// FlagUnsorted: the sorted flag is set but slots are not consecutive.
	FlagUnsorted

	flagCount = iota
)

const liveFlags = FlagLiveOutOfRange | FlagLiveReachesFree | FlagLiveLinkBroken | FlagLiveRingLength

var flagInfo = [flagCount]struct {
	name string
	text string
}{
	{"CapacityBelowReserved", "capacity is below the reserved capacity"},
	{"SizeExceedsCapacity", "size exceeds capacity"},
	{"ArenaLength", "arena arrays are not capacity+1 slots long"},
	{"SentinelFree", "sentinel slot is marked free"},
	{"LiveOutOfRange", "live ring links outside the arena"},
	{"LiveReachesFree", "live ring reaches a free slot"},
	{"LiveLinkBroken", "live ring prev/next links disagree"},
	{"LiveRingLength", "live ring length differs from size"},
	{"FreeCount", "free pool length differs from capacity - size"},
	{"FreeOutOfRange", "free pool links outside the arena"},
	{"FreeNotMarked", "free pool reaches a slot that is not marked free"},
	{"FreeChainShort", "free pool ends early"},
	{"FreeUnterminated", "free pool is not terminated"},
	{"FreeBackMismatch", "free pool back does not match its last slot"},
	{"Unsorted", "sorted flag set but slots are not consecutive"},
}

// Has reports whether every flag in g is set in f.
func (f Flags) Has(g Flags) bool { return f&g == g }

// Count returns the number of violated invariants.
func (f Flags) Count() int { return bits.OnesCount32(uint32(f)) }

// String joins the flag names with '|', or returns "OK".
func (f Flags) String() string {
	if f == 0 {
		return "OK"
	}
	var names []string
	f.each(func(i int) { names = append(names, flagInfo[i].name) })
	return strings.Join(names, "|")
}

// Explain returns one human-readable sentence per violated invariant.
func (f Flags) Explain() []string {
	var out []string
	f.each(func(i int) { out = append(out, flagInfo[i].text) })
	return out
}

func (f Flags) each(fn func(i int)) {
	for i := range flagCount {
		if f&(1<<i) != 0 {
			fn(i)
		}
	}
}

// Verify checks every structural invariant without mutating the list.
// Counter checks run first; the ring walks only run if the counters are sane.
func (l *List[T]) Verify() Flags {
	l.mustOpen()

	var f Flags
	if l.capacity < l.reserved {
		f |= FlagCapacityBelowReserved
	}
	if l.size < 0 || l.size > l.capacity {
		f |= FlagSizeExceedsCapacity
	}
	if f != 0 {
		return f
	}

	n := l.capacity + 1
	if len(l.values) != n || len(l.prev) != n || len(l.next) != n {
		return FlagArenaLength
	}
	if l.isFree(Sentinel) {
		return FlagSentinelFree
	}

	f |= l.verifyLive()
	f |= l.verifyFree()
	if f&liveFlags == 0 && l.sorted {
		f |= l.verifySorted()
	}
	return f
}

// verifyLive walks the live ring from the sentinel.
func (l *List[T]) verifyLive() Flags {
	var f Flags
	cur := Sentinel
	for steps := 0; ; steps++ {
		nx := l.next[cur]
		if !l.inRange(nx) {
			return f | FlagLiveOutOfRange
		}
		if nx != Sentinel && l.isFree(nx) {
			return f | FlagLiveReachesFree
		}
		if l.prev[nx] != cur {
			f |= FlagLiveLinkBroken
		}
		if nx == Sentinel {
			if steps != l.size {
				f |= FlagLiveRingLength
			}
			return f
		}
		if steps >= l.size {
			return f | FlagLiveRingLength
		}
		cur = nx
	}
}

// verifyFree walks the free pool from freeHead.
func (l *List[T]) verifyFree() Flags {
	var f Flags
	want := l.capacity - l.size
	if l.free != want {
		f |= FlagFreeCount
	}
	if want == 0 {
		return f
	}

	s, last := l.freeHead, Sentinel
	for range want {
		switch {
		case s == Sentinel:
			return f | FlagFreeChainShort
		case !l.inRange(s):
			return f | FlagFreeOutOfRange
		case !l.isFree(s):
			return f | FlagFreeNotMarked
		}
		last = s
		s = l.next[s]
	}
	if s != Sentinel {
		f |= FlagFreeUnterminated
	}
	if last != l.freeBack {
		f |= FlagFreeBackMismatch
	}
	return f
}

// verifySorted confirms the ring visits shift+1 .. shift+size in order.
// It assumes the live ring is well formed.
func (l *List[T]) verifySorted() Flags {
	want := l.shift + 1
	for s := l.next[Sentinel]; s != Sentinel; s = l.next[s] {
		if s != want {
			return FlagUnsorted
		}
		want++
	}
	return 0
}
