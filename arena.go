package framearena

import (
	"fmt"
	"math"
	"unsafe"
)

// Alignment is the byte multiple every allocation size is rounded up to.
const Alignment = 8

// DefaultCapacity is the capacity used when NewArena is given a size <= 0 (8 KiB).
const DefaultCapacity = 1 << 13

// MaxCapacity is the largest region NewArena will try to allocate.
const MaxCapacity = math.MaxInt &^ (Alignment - 1)

// Arena is a linear allocator over one contiguous, fixed-size region.
// Not goroutine-safe. Use SafeArena for concurrent access.
type Arena struct {
	buf      []byte // backing region, len(buf) is the capacity
	cursor   int    // offset of the next free byte, multiple of Alignment
	peak     int    // highest cursor observed, survives Reset
	epoch    uint64 // number of Reset calls
	allocs   uint64
	failures uint64
	released bool
}

// NewArena creates an Arena backed by an internally owned region of capacity bytes.
// If capacity <= 0, DefaultCapacity is used. The returned error matches
// ErrCapacity when the region cannot be backed.
func NewArena(capacity int) (a *Arena, err error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrCapacity, capacity, MaxCapacity)
	}

	// make panics with a runtime error when the length is out of range for
	// the platform; report that as a construction failure.
	defer func() {
		if r := recover(); r != nil {
			a, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrCapacity, capacity, r)
		}
	}()

	// Backing the region with words guarantees an 8-aligned base address.
	words := make([]uint64, (capacity+Alignment-1)/Alignment)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), capacity)
	return &Arena{buf: buf}, nil
}

// NewArenaFromBuffer creates an Arena over caller-supplied storage.
// The arena takes exclusive ownership of buf; the caller must not touch it
// while the arena is in use. Leading bytes before the first 8-aligned address
// are skipped, so Capacity may be smaller than len(buf).
func NewArenaFromBuffer(buf []byte) *Arena {
	if len(buf) == 0 {
		return &Arena{buf: []byte{}}
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	skip := int(alignUp(base) - base)
	if skip >= len(buf) {
		return &Arena{buf: []byte{}}
	}
	return &Arena{buf: buf[skip:len(buf):len(buf)]}
}

// AllocBytes reserves n bytes and returns a slice over them.
// The contents are uninitialized: they hold whatever the previous frame left.
// The slice is capped at n so appending to it reallocates instead of running
// into the next allocation.
//
// n == 0 succeeds with an empty slice positioned at the cursor and does not
// advance it. On failure the returned error matches ErrOutOfSpace and the
// arena is unchanged.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	off, err := a.reserve(n)
	if err != nil {
		return nil, err
	}
	return a.buf[off : off+n : off+n], nil
}

// Allocate reserves n bytes like AllocBytes but returns a Block handle that
// detects use after the next Reset.
func (a *Arena) Allocate(n int) (Block, error) {
	off, err := a.reserve(n)
	if err != nil {
		return Block{}, err
	}
	return Block{a: a, off: off, n: n, epoch: a.epoch}, nil
}

// reserve advances the cursor past an aligned n-byte range and returns its start.
func (a *Arena) reserve(n int) (int, error) {
	a.panicIfReleased()

	// Negative sizes and sizes whose rounding overflows are unrepresentable.
	if n < 0 || n > MaxCapacity {
		return 0, a.outOfSpace(n)
	}
	size := int(alignUp(uintptr(n)))
	if size > len(a.buf)-a.cursor {
		return 0, a.outOfSpace(n)
	}

	off := a.cursor
	a.cursor += size
	if a.cursor > a.peak {
		a.peak = a.cursor
	}
	a.allocs++
	return off, nil
}

func (a *Arena) outOfSpace(n int) error {
	a.failures++
	return &OutOfSpaceError{Requested: n, Offset: a.cursor, Capacity: len(a.buf)}
}

// Reset rewinds the cursor to zero, invalidating every previously returned
// allocation at once. The region's bytes are left as they are.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.cursor = 0
	a.epoch++
}

// Release drops the region and makes the arena unusable.
// Any subsequent allocation or Reset will panic.
func (a *Arena) Release() {
	a.buf = nil
	a.cursor = 0
	a.released = true
}

// Offset returns the current cursor position.
func (a *Arena) Offset() int {
	return a.cursor
}

// Epoch returns the number of times the arena has been reset.
func (a *Arena) Epoch() uint64 {
	return a.epoch
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.released {
		panic("arena: use after Release()")
	}
}

// alignUp rounds off up to the next multiple of Alignment.
// Callers guarantee off <= MaxCapacity, so the addition cannot wrap.
func alignUp(off uintptr) uintptr {
	const mask = Alignment - 1
	return (off + mask) &^ mask
}
