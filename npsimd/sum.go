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

// ReduceSum sums all lanes of a float vector into a single scalar.
//
// The summation order is the fixed pairwise tree the shuffle sequence
// below encodes, not a left-to-right fold. Float addition is not
// associative, so callers comparing against scalar references must
// reproduce the same tree: for float32 lanes a0..a7 the result is
// ((a0+a4)+(a1+a5)) + ((a2+a6)+(a3+a7)), and for float64 lanes a0..a3
// it is (a1+a3)+(a0+a2).
func ReduceSum[T Floats](v Vec[T]) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(sumPs(v.r))
	default: // float64
		return T(sumPd(v.r))
	}
}

// sumPs collapses 8 float32 lanes: halve, add, then two shuffle/add
// rounds down to the lowest lane.
func sumPs(a m256) float32 {
	t1 := addPs128(a.low128(), a.high128())
	t2 := movehdupPs(t1)
	t3 := addPs128(t1, t2)
	t4 := movehlPs(t3, t3)
	t5 := addSs(t3, t4)
	return cvtssF32(t5)
}

// sumPd collapses 4 float64 lanes: halve, add, then one unpack/add
// down to the lowest lane.
func sumPd(a m256) float64 {
	t1 := addPd128(a.low128(), a.high128())
	t2 := unpackhiPd(t1, t1)
	t3 := addSd(t2, t1)
	return cvtsdF64(t3)
}
