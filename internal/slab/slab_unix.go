//go:build linux || darwin

package slab

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// mapWords backs a block with an anonymous private mapping.
func mapWords[W ~uint32](n int) (*Block[W], error) {
	if n == 0 {
		return &Block[W]{words: []W{}, kind: Mmap, release: func() error { return nil }}, nil
	}

	var w W
	size := n * int(unsafe.Sizeof(w))
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) || errors.Is(err, unix.EAGAIN) {
			return nil, fmt.Errorf("slab: mmap %d bytes: %w", size, ErrNoMemory)
		}
		return nil, fmt.Errorf("slab: mmap %d bytes: %w", size, err)
	}

	cleanup := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return &Block[W]{
		words:   unsafe.Slice((*W)(unsafe.Pointer(&data[0])), n),
		kind:    Mmap,
		release: cleanup,
	}, nil
}
