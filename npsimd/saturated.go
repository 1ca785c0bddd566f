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

// Saturated arithmetic clamps results to the lane type's range instead
// of wrapping. Unlike the wraparound ops, clamping depends on the sign
// of the lane type, so each of the four SatLanes types maps to its own
// primitive. Saturation on 32-bit and 64-bit lanes would need a
// pack/narrow primitive set this layer does not have; those lane types
// are excluded from SatLanes so that requesting them fails to compile.

// SaturatedAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4).
func SaturatedAdd[T SatLanes](a, b Vec[T]) Vec[T] {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Vec[T]{r: addsEpi8(a.r, b.r)}
	case uint8:
		return Vec[T]{r: addsEpu8(a.r, b.r)}
	case int16:
		return Vec[T]{r: addsEpi16(a.r, b.r)}
	default: // uint16
		return Vec[T]{r: addsEpu16(a.r, b.r)}
	}
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246).
func SaturatedSub[T SatLanes](a, b Vec[T]) Vec[T] {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Vec[T]{r: subsEpi8(a.r, b.r)}
	case uint8:
		return Vec[T]{r: subsEpu8(a.r, b.r)}
	case int16:
		return Vec[T]{r: subsEpi16(a.r, b.r)}
	default: // uint16
		return Vec[T]{r: subsEpu16(a.r, b.r)}
	}
}
