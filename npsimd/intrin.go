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

// This file provides the execution primitives the operation mappings
// resolve to, one function per wide-register instruction semantics.
// Each primitive consumes and produces registers of exactly one lane
// width; there is no reinterpretation across widths inside a primitive.
// The wraparound integer primitives are sign-agnostic: two's-complement
// add, subtract, and low-half multiply produce identical bits for the
// signed and unsigned reading of the same lanes, so one primitive per
// width serves both.

func addEpi8(a, b m256) m256 {
	var r m256
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func addEpi16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		r.putU16(i, a.u16(i)+b.u16(i))
	}
	return r
}

func addEpi32(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putU32(i, a.u32(i)+b.u32(i))
	}
	return r
}

func addEpi64(a, b m256) m256 {
	var r m256
	for i := 0; i < 4; i++ {
		r.putU64(i, a.u64(i)+b.u64(i))
	}
	return r
}

func subEpi8(a, b m256) m256 {
	var r m256
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func subEpi16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		r.putU16(i, a.u16(i)-b.u16(i))
	}
	return r
}

func subEpi32(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putU32(i, a.u32(i)-b.u32(i))
	}
	return r
}

func subEpi64(a, b m256) m256 {
	var r m256
	for i := 0; i < 4; i++ {
		r.putU64(i, a.u64(i)-b.u64(i))
	}
	return r
}

// addsEpu8 adds unsigned 8-bit lanes, clamping to 255.
func addsEpu8(a, b m256) m256 {
	var r m256
	for i := range r {
		sum := uint16(a[i]) + uint16(b[i])
		if sum > 255 {
			sum = 255
		}
		r[i] = byte(sum)
	}
	return r
}

// addsEpi8 adds signed 8-bit lanes, clamping to [-128, 127].
func addsEpi8(a, b m256) m256 {
	var r m256
	for i := range r {
		sum := int16(int8(a[i])) + int16(int8(b[i]))
		if sum > 127 {
			sum = 127
		}
		if sum < -128 {
			sum = -128
		}
		r[i] = byte(int8(sum))
	}
	return r
}

// addsEpu16 adds unsigned 16-bit lanes, clamping to 65535.
func addsEpu16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		sum := uint32(a.u16(i)) + uint32(b.u16(i))
		if sum > 65535 {
			sum = 65535
		}
		r.putU16(i, uint16(sum))
	}
	return r
}

// addsEpi16 adds signed 16-bit lanes, clamping to [-32768, 32767].
func addsEpi16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		sum := int32(int16(a.u16(i))) + int32(int16(b.u16(i)))
		if sum > 32767 {
			sum = 32767
		}
		if sum < -32768 {
			sum = -32768
		}
		r.putU16(i, uint16(int16(sum)))
	}
	return r
}

// subsEpu8 subtracts unsigned 8-bit lanes, clamping to 0.
func subsEpu8(a, b m256) m256 {
	var r m256
	for i := range r {
		if b[i] > a[i] {
			r[i] = 0
		} else {
			r[i] = a[i] - b[i]
		}
	}
	return r
}

// subsEpi8 subtracts signed 8-bit lanes, clamping to [-128, 127].
func subsEpi8(a, b m256) m256 {
	var r m256
	for i := range r {
		diff := int16(int8(a[i])) - int16(int8(b[i]))
		if diff > 127 {
			diff = 127
		}
		if diff < -128 {
			diff = -128
		}
		r[i] = byte(int8(diff))
	}
	return r
}

// subsEpu16 subtracts unsigned 16-bit lanes, clamping to 0.
func subsEpu16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		av, bv := a.u16(i), b.u16(i)
		if bv > av {
			r.putU16(i, 0)
		} else {
			r.putU16(i, av-bv)
		}
	}
	return r
}

// subsEpi16 subtracts signed 16-bit lanes, clamping to [-32768, 32767].
func subsEpi16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		diff := int32(int16(a.u16(i))) - int32(int16(b.u16(i)))
		if diff > 32767 {
			diff = 32767
		}
		if diff < -32768 {
			diff = -32768
		}
		r.putU16(i, uint16(int16(diff)))
	}
	return r
}

// mulloEpi16 multiplies 16-bit lanes, keeping the low 16 bits of each
// product.
func mulloEpi16(a, b m256) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		r.putU16(i, a.u16(i)*b.u16(i))
	}
	return r
}

// mulloEpi32 multiplies 32-bit lanes, keeping the low 32 bits of each
// product.
func mulloEpi32(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putU32(i, a.u32(i)*b.u32(i))
	}
	return r
}

// sraiEpi16 shifts 16-bit lanes right arithmetically (sign-filling).
func sraiEpi16(a m256, count uint) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		r.putU16(i, uint16(int16(a.u16(i))>>count))
	}
	return r
}

// slliEpi16 shifts 16-bit lanes left, shifting in zeros.
func slliEpi16(a m256, count uint) m256 {
	var r m256
	for i := 0; i < 16; i++ {
		r.putU16(i, a.u16(i)<<count)
	}
	return r
}

// blendvEpi8 selects per byte: lanes whose mask byte has the high bit
// set come from b, the rest from a.
func blendvEpi8(a, b, mask m256) m256 {
	var r m256
	for i := range r {
		if mask[i]&0x80 != 0 {
			r[i] = b[i]
		} else {
			r[i] = a[i]
		}
	}
	return r
}

// set1Epi32 broadcasts a 32-bit pattern to all 32-bit lanes.
func set1Epi32(v uint32) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putU32(i, v)
	}
	return r
}

func addPs(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putF32(i, a.f32(i)+b.f32(i))
	}
	return r
}

func subPs(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putF32(i, a.f32(i)-b.f32(i))
	}
	return r
}

func mulPs(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putF32(i, a.f32(i)*b.f32(i))
	}
	return r
}

func divPs(a, b m256) m256 {
	var r m256
	for i := 0; i < 8; i++ {
		r.putF32(i, a.f32(i)/b.f32(i))
	}
	return r
}

func addPd(a, b m256) m256 {
	var r m256
	for i := 0; i < 4; i++ {
		r.putF64(i, a.f64(i)+b.f64(i))
	}
	return r
}

func subPd(a, b m256) m256 {
	var r m256
	for i := 0; i < 4; i++ {
		r.putF64(i, a.f64(i)-b.f64(i))
	}
	return r
}

func mulPd(a, b m256) m256 {
	var r m256
	for i := 0; i < 4; i++ {
		r.putF64(i, a.f64(i)*b.f64(i))
	}
	return r
}

func divPd(a, b m256) m256 {
	var r m256
	for i := 0; i < 4; i++ {
		r.putF64(i, a.f64(i)/b.f64(i))
	}
	return r
}

// Half-register primitives used by the reduction kernels.

func addPs128(a, b m128) m128 {
	var r m128
	for i := 0; i < 4; i++ {
		r.putF32(i, a.f32(i)+b.f32(i))
	}
	return r
}

// movehdupPs duplicates the odd float32 lanes into the even positions:
// [a1, a1, a3, a3].
func movehdupPs(a m128) m128 {
	var r m128
	r.putF32(0, a.f32(1))
	r.putF32(1, a.f32(1))
	r.putF32(2, a.f32(3))
	r.putF32(3, a.f32(3))
	return r
}

// movehlPs moves the high float32 pair of b into the low positions:
// [b2, b3, a2, a3].
func movehlPs(a, b m128) m128 {
	var r m128
	r.putF32(0, b.f32(2))
	r.putF32(1, b.f32(3))
	r.putF32(2, a.f32(2))
	r.putF32(3, a.f32(3))
	return r
}

// addSs adds only the lowest float32 lane; the upper lanes pass
// through from a.
func addSs(a, b m128) m128 {
	r := a
	r.putF32(0, a.f32(0)+b.f32(0))
	return r
}

// cvtssF32 extracts the lowest float32 lane.
func cvtssF32(a m128) float32 {
	return a.f32(0)
}

func addPd128(a, b m128) m128 {
	var r m128
	r.putF64(0, a.f64(0)+b.f64(0))
	r.putF64(1, a.f64(1)+b.f64(1))
	return r
}

// unpackhiPd interleaves the high float64 lanes: [a1, b1].
func unpackhiPd(a, b m128) m128 {
	var r m128
	r.putF64(0, a.f64(1))
	r.putF64(1, b.f64(1))
	return r
}

// addSd adds only the lowest float64 lane; the upper lane passes
// through from a.
func addSd(a, b m128) m128 {
	r := a
	r.putF64(0, a.f64(0)+b.f64(0))
	return r
}

// cvtsdF64 extracts the lowest float64 lane.
func cvtsdF64(a m128) float64 {
	return a.f64(0)
}
