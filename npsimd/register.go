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

import (
	"encoding/binary"
	"math"
)

// registerBytes is the fixed register width in bytes. Every Vec
// occupies one 256-bit register regardless of lane type.
const registerBytes = 32

// m256 is an opaque 256-bit register value. Lane interpretation is
// supplied by the operation, not by the register: the same bytes may
// be read as 32 8-bit lanes or as 4 64-bit lanes. Registers are always
// passed and returned by value.
type m256 [32]byte

// m128 is a 128-bit half register. The horizontal-reduction kernels
// collapse a 256-bit register through this width.
type m128 [16]byte

// Lanes are stored little-endian, matching the memory layout of the
// wide-register target this package models.

func (r m256) u16(i int) uint16 { return binary.LittleEndian.Uint16(r[2*i:]) }
func (r m256) u32(i int) uint32 { return binary.LittleEndian.Uint32(r[4*i:]) }
func (r m256) u64(i int) uint64 { return binary.LittleEndian.Uint64(r[8*i:]) }

func (r *m256) putU16(i int, v uint16) { binary.LittleEndian.PutUint16(r[2*i:], v) }
func (r *m256) putU32(i int, v uint32) { binary.LittleEndian.PutUint32(r[4*i:], v) }
func (r *m256) putU64(i int, v uint64) { binary.LittleEndian.PutUint64(r[8*i:], v) }

func (r m256) f32(i int) float32 { return math.Float32frombits(r.u32(i)) }
func (r m256) f64(i int) float64 { return math.Float64frombits(r.u64(i)) }

func (r *m256) putF32(i int, v float32) { r.putU32(i, math.Float32bits(v)) }
func (r *m256) putF64(i int, v float64) { r.putU64(i, math.Float64bits(v)) }

// low128 returns the low half of the register.
func (r m256) low128() m128 {
	var h m128
	copy(h[:], r[:16])
	return h
}

// high128 returns the high half of the register.
func (r m256) high128() m128 {
	var h m128
	copy(h[:], r[16:])
	return h
}

func (h m128) u32(i int) uint32 { return binary.LittleEndian.Uint32(h[4*i:]) }
func (h m128) u64(i int) uint64 { return binary.LittleEndian.Uint64(h[8*i:]) }

func (h m128) f32(i int) float32 { return math.Float32frombits(h.u32(i)) }
func (h m128) f64(i int) float64 { return math.Float64frombits(h.u64(i)) }

func (h *m128) putF32(i int, v float32) {
	binary.LittleEndian.PutUint32(h[4*i:], math.Float32bits(v))
}

func (h *m128) putF64(i int, v float64) {
	binary.LittleEndian.PutUint64(h[8*i:], math.Float64bits(v))
}
