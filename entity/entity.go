// Package entity defines the fixed-size record the frame loop allocates and
// the per-frame spawning workload built on it.
package entity

import (
	"bytes"
	"strconv"
	"unsafe"

	"github.com/pavanmanishd/framearena"
)

// NameSize is the width of the inline, NUL-terminated name field.
const NameSize = 32

// Entity is a pointer-free record that can live in an arena.
type Entity struct {
	X, Y float32
	Name [NameSize]byte
}

// Size is the number of bytes an Entity occupies (40).
const Size = int(unsafe.Sizeof(Entity{}))

// SetName stores s in the name field, truncated to NameSize-1 bytes so a
// terminating NUL always fits. The rest of the field is zeroed, which matters
// for records carved out of reused arena memory.
func (e *Entity) SetName(s string) {
	n := copy(e.Name[:NameSize-1], s)
	clear(e.Name[n:])
}

// SetIndexedName stores prefix followed by the decimal form of i with the
// same bounds as SetName, without allocating.
func (e *Entity) SetIndexedName(prefix string, i int) {
	var scratch [NameSize + 20]byte
	b := append(scratch[:0], prefix...)
	b = strconv.AppendInt(b, int64(i), 10)
	n := copy(e.Name[:NameSize-1], b)
	clear(e.Name[n:])
}

// NameString returns the name up to its first NUL byte.
func (e *Entity) NameString() string {
	if i := bytes.IndexByte(e.Name[:], 0); i >= 0 {
		return string(e.Name[:i])
	}
	return string(e.Name[:])
}

// Place writes every field of e.
func (e *Entity) Place(x, y float32, name string) {
	e.X, e.Y = x, y
	e.SetName(name)
}

// New allocates one uninitialized Entity from a. Every field must be written,
// for example with Place, before it is read.
func New(a *framearena.Arena) (*Entity, error) {
	return framearena.AllocUninitialized[Entity](a)
}

// NewBatch allocates n contiguous uninitialized entities from a.
func NewBatch(a *framearena.Arena, n int) ([]Entity, error) {
	return framearena.AllocSlice[Entity](a, n)
}
