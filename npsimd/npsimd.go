// Package npsimd provides portable elementwise arithmetic over fixed
// 256-bit vector registers.
//
// It follows the universal-intrinsics design used by numeric kernels:
// one architecture-neutral operation name per (operation, lane type)
// pair, resolved at compile time to exactly one wide-register
// primitive. Combinations the target does not implement expose no name
// at all: the constraint on the generic operation simply excludes the
// lane type, so requesting it is a compile error rather than a slower
// fallback.
//
// Basic usage:
//
//	import "github.com/Rich-AlFa/go-npsimd/npsimd"
//
//	a := npsimd.Load(data1)
//	b := npsimd.Load(data2)
//	sum := npsimd.Add(a, b)
//	sum.Store(out)
//
// All operations are pure functions over caller-owned register values.
// There is no shared state anywhere in the package, so concurrent use
// from multiple goroutines needs no coordination.
package npsimd

import "unsafe"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every lane type a 256-bit register can hold.
// The unions are exact (no ~): a register's lane layout is defined for
// precisely these ten types, and the per-width dispatch below relies on
// the dynamic type matching one of them.
type Lanes interface {
	Floats | Integers
}

// MulLanes is the set of lane types with a multiply mapping. 64-bit
// integer lanes are excluded: the target has no 64-bit low-half
// multiply and no emulation is provided.
type MulLanes interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

// SatLanes is the set of lane types with saturating add/subtract
// mappings. Only 8-bit and 16-bit lanes saturate natively; the wider
// variants await a pack/narrow primitive set and are deliberately not
// part of this constraint.
type SatLanes interface {
	int8 | uint8 | int16 | uint16
}

// Vec is a 256-bit vector value holding 32/sizeof(T) lanes of type T.
//
// Vec instances should not be constructed directly; use Load, Set, or
// Zero instead. The register contents are opaque: lane access goes
// through GetLane, Store, or Data.
type Vec[T Lanes] struct {
	r m256
}

// NumLanes returns the number of lanes a 256-bit register holds for
// lane type T.
//
// For example: float32 -> 8, float64 -> 4, uint8 -> 32.
func NumLanes[T Lanes]() int {
	var dummy T
	return registerBytes / int(unsafe.Sizeof(dummy))
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return NumLanes[T]()
}

// Data returns the vector's lanes as a freshly allocated slice.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, NumLanes[T]())
	for i := range out {
		out[i] = getLane[T](v.r, i)
	}
	return out
}

// Store writes the vector's lanes to dst, stopping at the shorter of
// the two. This is the method form of the Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
