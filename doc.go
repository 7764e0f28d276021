// Package framearena implements a fixed-capacity linear allocator for
// frame-scoped memory.
//
// # Overview
//
// A linear (bump) allocator owns one contiguous region and a cursor. Every
// allocation rounds its size up to 8 bytes and advances the cursor; Reset
// moves the cursor back to zero and reclaims everything at once. There is no
// way to free a single allocation and the region never grows. In exchange
// both operations are O(1). This fits workloads like:
//
//   - Per-frame scratch data in simulations and game loops
//   - Per-request temporaries with a clear end of life
//   - Keeping short-lived, pointer-free records off the garbage collector
//
// # Basic Usage
//
//	a, err := framearena.NewArena(8 << 10)
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	for frame := 0; frame < 3; frame++ {
//		buf, err := a.AllocBytes(128)
//		if errors.Is(err, framearena.ErrOutOfSpace) {
//			// skip the frame, shrink the request or give up
//		}
//		recs, err := framearena.AllocSlice[Record](a, 69)
//		...
//		a.Reset() // everything above is now invalid
//	}
//
// # Use After Reset
//
// Slices and pointers handed out by AllocBytes, Alloc and AllocSlice are plain
// Go values; nothing stops a caller from reading them after Reset, when the
// memory already belongs to the next frame. Allocate returns a Block instead,
// which records the arena epoch it was issued in and panics on access once
// the arena has been reset.
//
// # Thread Safety
//
// Arena is meant to be owned by exactly one goroutine. SafeArena serializes
// every operation behind a mutex for the rare case an arena has to be shared.
//
// # Memory Contents
//
// Memory is not zeroed on allocation or on Reset unless Alloc or
// AllocSliceZeroed is used. Typed helpers refuse types that contain Go
// pointers because the region is invisible to the garbage collector.
//
// # Metrics
//
//	m := a.Metrics()
//	fmt.Printf("in use %d of %d bytes, peak %d\n", m.SizeInUse, m.Capacity, m.Peak)
//
// The promarena package exports the same snapshot to Prometheus.
package framearena
