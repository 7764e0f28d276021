package framearena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every operation holds the lock for its whole duration, so no caller ever
// observes a half-advanced cursor.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a thread-safe arena with the specified capacity.
// If capacity <= 0, DefaultCapacity is used.
func NewSafeArena(capacity int) (*SafeArena, error) {
	a, err := NewArena(capacity)
	if err != nil {
		return nil, err
	}
	return &SafeArena{a: a}, nil
}

// AllocBytes thread-safely reserves n bytes and returns a slice over them.
func (s *SafeArena) AllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Allocate thread-safely reserves n bytes and returns an epoch-tagged Block.
func (s *SafeArena) Allocate(n int) (Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(n)
}

// Reset thread-safely rewinds the cursor to zero.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops the region and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Valid thread-safely reports whether b still belongs to the current epoch.
func (s *SafeArena) Valid(b Block) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return b.Valid()
}

// Bytes thread-safely returns b's memory. It panics like Block.Bytes when the
// arena was reset or released after b was issued.
func (s *SafeArena) Bytes(b Block) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return b.Bytes()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside the arena.
func SafeAlloc[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n uninitialized elements.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n zeroed elements.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}
