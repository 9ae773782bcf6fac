package slotlist

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory indicates that the arena could not be created or grown.
	// The list is left in its last valid state.
	ErrOutOfMemory = errors.New("slotlist: out of memory")

	// ErrEmpty indicates a pop from an empty list.
	ErrEmpty = errors.New("slotlist: list is empty")
)

// CorruptionError reports a failed structural verification.
type CorruptionError struct {
	Op    string
	Flags Flags
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("slotlist: %s: structure corrupted: %s", e.Op, e.Flags)
}

// outOfMemory tags an allocation failure with ErrOutOfMemory.
func outOfMemory(err error) error {
	if errors.Is(err, ErrOutOfMemory) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
}
