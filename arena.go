package slotlist

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/slotlist/internal/slab"
)

// List is a doubly-linked list of T stored in a slot arena.
// The zero value is not usable; create lists with New.
type List[T any] struct {
	values []T
	prev   []Slot // prev links; freeTag for free slots
	next   []Slot // next links; free-pool links for free slots

	prevBlk *slab.Block[Slot]
	nextBlk *slab.Block[Slot]

	// Free pool (FIFO): acquire pops freeHead, release appends after freeBack.
	freeHead Slot
	freeBack Slot
	free     int

	reserved int
	capacity int
	size     int

	// sorted means the live ring visits shift+1 .. shift+size in order.
	sorted bool
	shift  Slot

	maxCap  int
	backing slab.Kind
	debug   bool
	log     *slog.Logger
	stats   Stats
	closed  bool

	// Test hook: replaced to inject allocation failures (slab.Alloc in production)
	alloc func(kind slab.Kind, n int) (*slab.Block[Slot], error)
}

// New creates a list with room for reserved elements before it first grows.
// A nil opts uses DefaultOptions.
func New[T any](reserved int, opts *Options) (*List[T], error) {
	if reserved < 0 {
		panic(fmt.Sprintf("slotlist: negative reserved capacity %d", reserved))
	}
	if opts == nil {
		d := DefaultOptions()
		opts = &d
	}

	l := &List[T]{
		reserved: reserved,
		sorted:   true,
		maxCap:   maxCapacity,
		backing:  opts.Backing.kind(),
		debug:    opts.Debug || debugEnv,
		log:      opts.Logger,
		alloc:    slab.Alloc[Slot],
	}
	if opts.MaxCapacity > 0 && opts.MaxCapacity < l.maxCap {
		l.maxCap = opts.MaxCapacity
	}
	if l.log == nil {
		l.log = discardLogger
	}

	if err := l.create(reserved); err != nil {
		l.log.Error("slotlist: create failed", "reserved", reserved, "err", err)
		return nil, err
	}
	return l, nil
}

// create allocates the arena and builds the initial free pool 1..reserved.
func (l *List[T]) create(reserved int) error {
	if reserved > l.maxCap {
		return fmt.Errorf("slotlist: create %d slots (limit %d): %w", reserved, l.maxCap, ErrOutOfMemory)
	}
	prev, next, err := l.allocLinks(reserved + 1)
	if err != nil {
		return fmt.Errorf("slotlist: create %d slots: %w", reserved, err)
	}

	l.install(prev, next)
	l.values = make([]T, reserved+1)
	l.capacity = reserved
	l.prev[Sentinel] = Sentinel
	l.next[Sentinel] = Sentinel
	l.linkFree(1, Slot(reserved))
	return nil
}

// allocLinks allocates a prev and a next block of n words. On failure nothing
// stays allocated.
func (l *List[T]) allocLinks(n int) (*slab.Block[Slot], *slab.Block[Slot], error) {
	prev, err := l.alloc(l.backing, n)
	if err != nil {
		return nil, nil, outOfMemory(err)
	}
	next, err := l.alloc(l.backing, n)
	if err != nil {
		if relErr := prev.Release(); relErr != nil {
			l.log.Warn("slotlist: release partial allocation", "err", relErr)
		}
		return nil, nil, outOfMemory(err)
	}
	return prev, next, nil
}

// install makes prev and next the current linkage blocks.
func (l *List[T]) install(prev, next *slab.Block[Slot]) {
	l.prevBlk, l.nextBlk = prev, next
	l.prev, l.next = prev.Words(), next.Words()
}

// Close releases all storage. A list that fails verification is still
// released, and the failure is reported as a *CorruptionError.
// Closing an already closed list returns nil.
func (l *List[T]) Close() error {
	if l.closed {
		return nil
	}

	var errs []error
	if f := l.Verify(); f != 0 {
		l.log.Warn("slotlist: closing corrupted list", "flags", f.String())
		errs = append(errs, &CorruptionError{Op: "close", Flags: f})
	}
	errs = append(errs, l.prevBlk.Release(), l.nextBlk.Release())

	l.values, l.prev, l.next = nil, nil, nil
	l.prevBlk, l.nextBlk = nil, nil
	l.closed = true
	return errors.Join(errs...)
}

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.size }

// Cap returns the number of slots available to elements (excluding the sentinel).
func (l *List[T]) Cap() int { return l.capacity }

// Reserved returns the capacity the list was created with.
func (l *List[T]) Reserved() int { return l.reserved }

// IsSorted reports whether logical order coincides with ascending slot order,
// making IndexToSlot O(1).
func (l *List[T]) IsSorted() bool { return l.sorted }

// Stats returns a copy of the allocation counters.
func (l *List[T]) Stats() Stats { return l.stats }

// isFree is the only place that knows how freeness is encoded.
func (l *List[T]) isFree(s Slot) bool { return l.prev[s] == freeTag }

// inRange reports whether s indexes the arena (sentinel included).
func (l *List[T]) inRange(s Slot) bool { return uint64(s) <= uint64(l.capacity) }

func (l *List[T]) mustOpen() {
	if l.closed {
		panic("slotlist: use of closed list")
	}
}

// mustLive panics unless s holds an element.
func (l *List[T]) mustLive(s Slot, op string) {
	l.mustOpen()
	switch {
	case s == Sentinel:
		panic(fmt.Sprintf("slotlist: %s: sentinel slot holds no element", op))
	case !l.inRange(s):
		panic(fmt.Sprintf("slotlist: %s: slot %d out of range [1, %d]", op, s, l.capacity))
	case l.isFree(s):
		panic(fmt.Sprintf("slotlist: %s: slot %d is free", op, s))
	}
}

// mustAnchor panics unless s is the sentinel or holds an element.
func (l *List[T]) mustAnchor(s Slot, op string) {
	if s == Sentinel {
		l.mustOpen()
		return
	}
	l.mustLive(s, op)
}

// checkDebug verifies before a mutation when debug checks are enabled.
func (l *List[T]) checkDebug(op string) {
	if !l.debug {
		return
	}
	if f := l.Verify(); f != 0 {
		panic(&CorruptionError{Op: op, Flags: f})
	}
}
