package framearena

import (
	"testing"
)

func TestArenaMetrics(t *testing.T) {
	a, _ := NewArena(1024)

	// Test initial state
	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Initial Capacity = %d, want 1024", a.Capacity())
	}
	if a.Available() != 1024 {
		t.Errorf("Initial Available = %d, want 1024", a.Available())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	a.AllocBytes(100)
	a.AllocBytes(200)
	a.AllocBytes(0)
	a.AllocBytes(2048) // fails

	if a.SizeInUse() != 304 {
		t.Errorf("SizeInUse = %d, want 304", a.SizeInUse())
	}
	if a.Available() != 720 {
		t.Errorf("Available = %d, want 720", a.Available())
	}
	if got, want := a.Utilization(), 304.0/1024.0; got != want {
		t.Errorf("Utilization = %f, want %f", got, want)
	}

	metrics := a.Metrics()
	want := ArenaMetrics{
		SizeInUse:   304,
		Capacity:    1024,
		Peak:        304,
		Resets:      0,
		Allocations: 3,
		Failures:    1,
		Utilization: 304.0 / 1024.0,
	}
	if metrics != want {
		t.Errorf("Metrics() = %+v, want %+v", metrics, want)
	}
}

func TestArenaMetricsAfterReset(t *testing.T) {
	a, _ := NewArena(1024)

	a.AllocBytes(500)
	a.Reset()
	a.AllocBytes(16)

	if a.SizeInUse() != 16 {
		t.Errorf("SizeInUse after Reset = %d, want 16", a.SizeInUse())
	}
	// Peak survives the reset.
	if a.Peak() != 504 {
		t.Errorf("Peak after Reset = %d, want 504", a.Peak())
	}
	if a.Metrics().Resets != 1 {
		t.Errorf("Resets = %d, want 1", a.Metrics().Resets)
	}
	if a.Capacity() != 1024 {
		t.Error("Capacity should not change after Reset")
	}
}

func TestArenaMetricsAfterRelease(t *testing.T) {
	a, _ := NewArena(1024)
	a.AllocBytes(100)

	a.Release()

	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Release = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != 0 {
		t.Errorf("Capacity after Release = %d, want 0", a.Capacity())
	}
	if a.Utilization() != 0 {
		t.Errorf("Utilization after Release = %f, want 0", a.Utilization())
	}
}

func TestSafeArenaMetrics(t *testing.T) {
	s, _ := NewSafeArena(2048)

	s.AllocBytes(300)

	if s.SizeInUse() != 304 {
		t.Errorf("SafeArena SizeInUse = %d, want 304", s.SizeInUse())
	}
	if s.Capacity() != 2048 {
		t.Errorf("SafeArena Capacity = %d, want 2048", s.Capacity())
	}

	utilization := s.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("SafeArena Utilization = %f, want 0 < x <= 1", utilization)
	}

	metrics := s.Metrics()
	if metrics.SizeInUse != 304 || metrics.Allocations != 1 {
		t.Errorf("SafeArena Metrics = %+v", metrics)
	}
}

func TestUtilizationEdgeCases(t *testing.T) {
	// Empty external buffer
	a := NewArenaFromBuffer(nil)
	if a.Utilization() != 0 {
		t.Errorf("empty arena Utilization = %f, want 0", a.Utilization())
	}

	// Completely full
	b, _ := NewArena(64)
	b.AllocBytes(64)
	if b.Utilization() != 1 {
		t.Errorf("full arena Utilization = %f, want 1", b.Utilization())
	}
}
