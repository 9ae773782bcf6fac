//go:build !linux && !darwin

package slab

// mapWords falls back to heap memory when anonymous mappings are unavailable.
func mapWords[W ~uint32](n int) (*Block[W], error) {
	return &Block[W]{
		words:   make([]W, n),
		kind:    Heap,
		release: func() error { return nil },
	}, nil
}
