package framearena

// SizeInUse returns the number of bytes currently reserved in the arena,
// including padding added by alignment.
func (a *Arena) SizeInUse() int {
	return a.cursor
}

// Capacity returns the total size of the arena's region in bytes.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Available returns the number of bytes that can still be reserved before the
// next Reset. An allocation of n bytes fits when its 8-aligned size is no
// larger than this value.
func (a *Arena) Available() int {
	return len(a.buf) - a.cursor
}

// Peak returns the highest cursor position observed since the arena was
// created. Unlike SizeInUse it is not cleared by Reset, which makes it the
// number to size a frame arena by.
func (a *Arena) Peak() int {
	return a.peak
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Peak:        a.Peak(),
		Resets:      a.epoch,
		Allocations: a.allocs,
		Failures:    a.failures,
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently reserved
	Capacity    int     // Region size in bytes
	Peak        int     // High-water mark of SizeInUse
	Resets      uint64  // Number of Reset calls
	Allocations uint64  // Successful allocations, zero-sized ones included
	Failures    uint64  // Allocations rejected with ErrOutOfSpace
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of bytes currently reserved.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Capacity thread-safely returns the region size.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Available thread-safely returns the bytes left before the next Reset.
func (s *SafeArena) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Available()
}

// Peak thread-safely returns the high-water mark.
func (s *SafeArena) Peak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Peak()
}

// Utilization thread-safely returns the ratio of bytes in use to capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
