package slotlist

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joshuapare/slotlist/internal/slab"
)

// Runtime debug flag - forces verification before every mutation when
// SLOTLIST_DEBUG is set.
var debugEnv = os.Getenv("SLOTLIST_DEBUG") != ""

// discardLogger is used when Options.Logger is nil.
var discardLogger = slog.New(slog.DiscardHandler)

// Backing selects where the linkage arrays are stored.
type Backing uint8

const (
	// BackingHeap stores linkage in Go slices.
	BackingHeap Backing = iota

	// BackingMmap stores linkage in anonymous memory mappings outside the Go
	// heap. Falls back to BackingHeap where mmap is unavailable.
	BackingMmap
)

func (b Backing) String() string {
	return b.kind().String()
}

func (b Backing) kind() slab.Kind {
	if b == BackingMmap {
		return slab.Mmap
	}
	return slab.Heap
}

// ParseBacking maps "heap" or "mmap" to a Backing.
func ParseBacking(s string) (Backing, error) {
	k, err := slab.ParseKind(s)
	if err != nil {
		return BackingHeap, fmt.Errorf("slotlist: %w", err)
	}
	if k == slab.Mmap {
		return BackingMmap, nil
	}
	return BackingHeap, nil
}

// Options configures a List.
type Options struct {
	// MaxCapacity caps arena growth. Creating or growing beyond it fails
	// with ErrOutOfMemory.
	// Default: 0 (MaxSlots)
	MaxCapacity int

	// Backing selects the linkage storage.
	// Default: BackingHeap
	Backing Backing

	// Debug verifies the structure before every mutating call and panics if
	// it is already corrupted.
	// Default: false
	Debug bool

	// Logger receives growth events and failures.
	// Default: nil (discard)
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() Options {
	return Options{
		MaxCapacity: 0,
		Backing:     BackingHeap,
		Debug:       false,
		Logger:      nil,
	}
}
