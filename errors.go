package framearena

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpace is matched by every allocation failure.
	ErrOutOfSpace = errors.New("arena: out of space")

	// ErrCapacity is returned by NewArena when the region cannot be backed.
	ErrCapacity = errors.New("arena: capacity cannot be backed")
)

// OutOfSpaceError describes an allocation that did not fit.
// The arena's cursor was still at Offset after the failed call.
type OutOfSpaceError struct {
	Requested int // bytes asked for, before rounding
	Offset    int // cursor at the time of the request
	Capacity  int
}

func (e *OutOfSpaceError) Error() string {
	return fmt.Sprintf("arena: out of space: requested %d bytes at offset %d of %d", e.Requested, e.Offset, e.Capacity)
}

// Is reports whether target is ErrOutOfSpace.
func (e *OutOfSpaceError) Is(target error) bool {
	return target == ErrOutOfSpace
}
