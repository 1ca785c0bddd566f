// Copyright 2026 go-npsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package npsimd

// Load creates a vector from the leading lanes of src. A source shorter
// than a full register leaves the remaining lanes zero.
func Load[T Lanes](src []T) Vec[T] {
	var r m256
	n := min(len(src), NumLanes[T]())
	for i := 0; i < n; i++ {
		putLane(&r, i, src[i])
	}
	return Vec[T]{r: r}
}

// Store writes a vector's lanes to dst, stopping at the shorter of the
// vector and the destination.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), NumLanes[T]())
	for i := 0; i < n; i++ {
		dst[i] = getLane[T](v.r, i)
	}
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var r m256
	for i := 0; i < NumLanes[T](); i++ {
		putLane(&r, i, value)
	}
	return Vec[T]{r: r}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// GetLane returns lane i of the vector, or zero if i is out of range.
func GetLane[T Lanes](v Vec[T], i int) T {
	var zero T
	if i < 0 || i >= NumLanes[T]() {
		return zero
	}
	return getLane[T](v.r, i)
}

func getLane[T Lanes](r m256, i int) T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return T(int8(r[i]))
	case uint8:
		return T(r[i])
	case int16:
		return T(int16(r.u16(i)))
	case uint16:
		return T(r.u16(i))
	case int32:
		return T(int32(r.u32(i)))
	case uint32:
		return T(r.u32(i))
	case int64:
		return T(int64(r.u64(i)))
	case uint64:
		return T(r.u64(i))
	case float32:
		return T(r.f32(i))
	default: // float64
		return T(r.f64(i))
	}
}

func putLane[T Lanes](r *m256, i int, v T) {
	switch value := any(v).(type) {
	case int8:
		r[i] = byte(value)
	case uint8:
		r[i] = value
	case int16:
		r.putU16(i, uint16(value))
	case uint16:
		r.putU16(i, value)
	case int32:
		r.putU32(i, uint32(value))
	case uint32:
		r.putU32(i, value)
	case int64:
		r.putU64(i, uint64(value))
	case uint64:
		r.putU64(i, value)
	case float32:
		r.putF32(i, value)
	case float64:
		r.putF64(i, value)
	}
}
