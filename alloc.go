package framearena

import (
	"fmt"
	"math"
	"reflect"
	"sync"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The pointer is valid until the next Reset. T must not contain Go pointers:
// the region is not scanned by the garbage collector.
func Alloc[T any](a *Arena) (*T, error) {
	p, err := AllocUninitialized[T](a)
	if err != nil {
		return nil, err
	}
	var zero T
	*p = zero
	return p, nil
}

// AllocUninitialized returns a *T located in the arena without zeroing memory.
// This is faster than Alloc but the contents are whatever the previous frame
// left there; every field must be written before it is read.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	a.panicIfReleased()
	mustBePointerFree[T]()
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 {
		// Zero-sized values never consume arena space.
		return new(T), nil
	}
	b, err := a.AllocBytes(size)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. n == 0 returns an empty slice without
// touching the arena.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	a.panicIfReleased()
	mustBePointerFree[T]()
	elemSize := int(unsafe.Sizeof(*new(T)))
	switch {
	case n < 0:
		return nil, a.outOfSpace(n)
	case n == 0:
		return []T{}, nil
	case elemSize == 0:
		return make([]T, n), nil
	case n > math.MaxInt/elemSize:
		// Total size is not representable.
		return nil, a.outOfSpace(math.MaxInt)
	}
	b, err := a.AllocBytes(elemSize * n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed memory.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	s, err := AllocSlice[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(s)
	return s, nil
}

var pointerFree sync.Map // reflect.Type -> bool

// mustBePointerFree panics if T holds Go pointers.
func mustBePointerFree[T any]() {
	t := reflect.TypeFor[T]()
	ok, cached := pointerFree.Load(t)
	if !cached {
		ok = !hasPointers(t)
		pointerFree.Store(t, ok)
	}
	if !ok.(bool) {
		panic(fmt.Sprintf("arena: %v contains pointers and cannot live in an arena", t))
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	default:
		return true
	}
}
