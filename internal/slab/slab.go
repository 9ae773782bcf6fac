// Package slab provides fixed-size blocks of 32-bit words used as linkage
// storage by the slot list. Blocks are either ordinary Go slices or anonymous
// memory mappings that live outside the Go heap.
package slab

import (
	"errors"
	"fmt"
	"math"
)

// Kind selects the memory source for a Block.
type Kind uint8

const (
	// Heap blocks are ordinary Go slices.
	Heap Kind = iota

	// Mmap blocks are anonymous private mappings. On platforms without mmap
	// support they silently fall back to Heap.
	Mmap
)

// ErrNoMemory indicates that the memory source could not satisfy a request.
var ErrNoMemory = errors.New("slab: out of memory")

// maxWords bounds a single block so its byte length fits an int on 32-bit hosts.
const maxWords = math.MaxInt32 / 4

// String returns the flag-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case Heap:
		return "heap"
	case Mmap:
		return "mmap"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind maps "heap" or "mmap" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "heap", "":
		return Heap, nil
	case "mmap":
		return Mmap, nil
	default:
		return Heap, fmt.Errorf("slab: unknown kind %q (must be heap or mmap)", s)
	}
}

// Block is a zero-initialized array of n words.
type Block[W ~uint32] struct {
	words   []W
	kind    Kind
	release func() error
}

// Alloc returns a zeroed block of n words from the given memory source.
func Alloc[W ~uint32](kind Kind, n int) (*Block[W], error) {
	if n < 0 {
		panic("slab: negative block length")
	}
	if n > maxWords {
		return nil, fmt.Errorf("slab: %d words: %w", n, ErrNoMemory)
	}
	if kind == Mmap {
		return mapWords[W](n)
	}
	return &Block[W]{
		words:   make([]W, n),
		kind:    Heap,
		release: func() error { return nil },
	}, nil
}

// Words exposes the backing storage. The slice is invalid after Release.
func (b *Block[W]) Words() []W { return b.words }

// Len returns the number of words in the block.
func (b *Block[W]) Len() int { return len(b.words) }

// Kind reports where the block's memory actually came from.
func (b *Block[W]) Kind() Kind { return b.kind }

// Release returns the memory to its source. Releasing twice is a no-op.
func (b *Block[W]) Release() error {
	if b == nil || b.release == nil {
		return nil
	}
	fn := b.release
	b.release = nil
	b.words = nil
	return fn()
}
