package slotlist

import "math"

// Slot is a handle to a position in the arena.
type Slot uint32

const (
	// Sentinel anchors the live ring. It never holds an element.
	Sentinel Slot = 0

	// MaxSlots is the largest capacity a list can reach.
	MaxSlots = math.MaxUint32 - 1

	// maxCapacity is MaxSlots clamped so capacity+1 fits the host int.
	maxCapacity = min(MaxSlots, math.MaxInt-1)

	// freeTag marks a slot as free when stored in its prev link.
	freeTag Slot = math.MaxUint32
)

// SlotState classifies a slot in a Snapshot.
type SlotState uint8

const (
	StateSentinel SlotState = iota
	StateLive
	StateFree
)

func (s SlotState) String() string {
	switch s {
	case StateSentinel:
		return "sentinel"
	case StateLive:
		return "live"
	case StateFree:
		return "free"
	default:
		return "unknown"
	}
}

// Stats holds allocation counters for instrumentation and tests.
type Stats struct {
	Acquires     uint64 // Slots handed out by the free pool
	Releases     uint64 // Slots returned to the free pool
	Grows        uint64 // Successful arena growths
	GrowFailures uint64 // Growths that returned ErrOutOfMemory
	Compactions  uint64 // Compact calls
}
