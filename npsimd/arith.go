package npsimd

// This file is the operation mapping tier: one exported name per
// operation kind, whose constraint is exactly the set of lane types
// the target implements and whose body names exactly one primitive per
// lane width. Wraparound add, subtract, and multiply are sign-agnostic
// at the bit level, so the signed and unsigned case of equal width
// resolve to the identical primitive rather than duplicating it.

// Add performs element-wise addition. Integer lanes wrap on overflow
// (mod 2^width); float lanes follow IEEE semantics.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return Vec[T]{r: addEpi8(a.r, b.r)}
	case int16, uint16:
		return Vec[T]{r: addEpi16(a.r, b.r)}
	case int32, uint32:
		return Vec[T]{r: addEpi32(a.r, b.r)}
	case int64, uint64:
		return Vec[T]{r: addEpi64(a.r, b.r)}
	case float32:
		return Vec[T]{r: addPs(a.r, b.r)}
	default: // float64
		return Vec[T]{r: addPd(a.r, b.r)}
	}
}

// Sub performs element-wise subtraction. Integer lanes wrap on
// underflow (mod 2^width); float lanes follow IEEE semantics.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return Vec[T]{r: subEpi8(a.r, b.r)}
	case int16, uint16:
		return Vec[T]{r: subEpi16(a.r, b.r)}
	case int32, uint32:
		return Vec[T]{r: subEpi32(a.r, b.r)}
	case int64, uint64:
		return Vec[T]{r: subEpi64(a.r, b.r)}
	case float32:
		return Vec[T]{r: subPs(a.r, b.r)}
	default: // float64
		return Vec[T]{r: subPd(a.r, b.r)}
	}
}

// Mul performs element-wise multiplication, keeping the low half of
// each integer product (wraparound mod 2^width). 8-bit lanes have no
// single-instruction multiply on this target and go through the
// widening composite in mul8.go; 64-bit integer lanes have no mapping
// at all, which is why MulLanes excludes them.
func Mul[T MulLanes](a, b Vec[T]) Vec[T] {
	var zero T
	switch any(zero).(type) {
	case int8, uint8:
		return Vec[T]{r: mulU8(a.r, b.r)}
	case int16, uint16:
		return Vec[T]{r: mulloEpi16(a.r, b.r)}
	case int32, uint32:
		return Vec[T]{r: mulloEpi32(a.r, b.r)}
	case float32:
		return Vec[T]{r: mulPs(a.r, b.r)}
	default: // float64
		return Vec[T]{r: mulPd(a.r, b.r)}
	}
}

// Div performs element-wise division for float lanes. Integer lanes
// have no division mapping on this target; a future software emulation
// would live above this layer, not here.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Vec[T]{r: divPs(a.r, b.r)}
	default: // float64
		return Vec[T]{r: divPd(a.r, b.r)}
	}
}
