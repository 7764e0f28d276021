package framearena

// Block is a handle to an arena allocation that remembers the epoch it was
// issued in. Accessing it after the arena has been reset panics instead of
// silently reading memory that now belongs to a later frame.
//
// Block methods are not synchronized. For blocks issued by a SafeArena use
// SafeArena.Valid and SafeArena.Bytes.
type Block struct {
	a     *Arena
	off   int
	n     int
	epoch uint64
}

// Valid reports whether the block still belongs to its arena's current epoch.
// The zero Block is never valid.
func (b Block) Valid() bool {
	return b.a != nil && !b.a.released && b.a.epoch == b.epoch
}

// Bytes returns the block's memory. It panics if the arena was reset or
// released after the block was issued.
func (b Block) Bytes() []byte {
	if b.a == nil {
		panic("arena: zero Block")
	}
	b.a.panicIfReleased()
	if b.a.epoch != b.epoch {
		panic("arena: block used after Reset()")
	}
	return b.a.buf[b.off : b.off+b.n : b.off+b.n]
}

// Offset returns the block's start within the arena region.
func (b Block) Offset() int { return b.off }

// Len returns the requested size of the block.
func (b Block) Len() int { return b.n }

// Epoch returns the arena epoch the block was issued in.
func (b Block) Epoch() uint64 { return b.epoch }
