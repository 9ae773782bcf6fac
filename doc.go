// Package slotlist implements a generic doubly-linked list stored in a flat,
// index-addressed slot arena instead of individually allocated nodes.
//
// # Overview
//
// Elements live in slots of three parallel arrays: a payload array and the
// prev/next linkage arrays. Slot 0 is the sentinel; it never holds a payload
// and anchors the live ring, so Next(Sentinel) is the head and
// Prev(Sentinel) is the tail. Unused slots form a FIFO free pool threaded
// through the same linkage arrays, which makes insert and remove O(1) without
// any per-element allocation.
//
//	l, err := slotlist.New[int](16, nil)
//	if err != nil {
//	    return err
//	}
//	defer l.Close()
//
//	a, _ := l.PushBack(1)
//	_, _ = l.PushBack(3)
//	_, _ = l.InsertAfter(a, 2)
//
//	for _, v := range l.All() {
//	    fmt.Println(v) // 1 2 3
//	}
//
// # Slots
//
// A Slot is a stable handle to an element. It stays valid until the element
// is removed or the list is compacted. Passing a slot that is out of range,
// free, or the sentinel where an element is required is a programmer error
// and panics.
//
// # Growth
//
// When the free pool is exhausted the arena doubles (0 grows to 1). Growth
// is all-or-nothing: if any allocation fails the list is unchanged and the
// operation returns ErrOutOfMemory. The arena never shrinks.
//
// # Sortedness
//
// While the live ring visits consecutive slots in ascending order the list
// is sorted and IndexToSlot is O(1). Appending at the tail of a sorted run,
// prepending directly below it, and popping either end keep the list sorted.
// Any other insert or remove clears the flag and IndexToSlot falls back to a
// ring walk. Compact rebuilds the arena so the elements occupy slots
// 1..Len() in logical order and the flag is restored.
//
// # Verification
//
// Verify walks both rings and returns a Flags bitset naming every violated
// invariant (zero means OK). It is O(capacity) and meant for tests, debug
// builds and pre-destruction checks. With Options.Debug (or SLOTLIST_DEBUG
// set in the environment) every mutating call verifies first and panics with
// a *CorruptionError if the structure is already broken.
//
// # Storage
//
// Linkage arrays can be backed by the Go heap (BackingHeap) or by anonymous
// memory mappings outside the Go heap (BackingMmap, linux and darwin).
// Payloads always live on the Go heap.
//
// # Thread Safety
//
// A List is not safe for concurrent use. Callers must serialize access
// externally.
package slotlist
