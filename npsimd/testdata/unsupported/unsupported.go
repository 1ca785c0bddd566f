// Package unsupported instantiates (operation, lane type) pairs with
// no mapping; every declaration below must fail to type-check.
package unsupported

import "github.com/Rich-AlFa/go-npsimd/npsimd"

var (
	_ = npsimd.Mul[uint64]          // no 64-bit integer multiply
	_ = npsimd.Mul[int64]           // no 64-bit integer multiply
	_ = npsimd.Div[int32]           // integer division is not mapped
	_ = npsimd.Div[uint8]           // integer division is not mapped
	_ = npsimd.SaturatedAdd[uint32] // saturation stops at 16-bit lanes
	_ = npsimd.SaturatedAdd[int64]  // saturation stops at 16-bit lanes
	_ = npsimd.SaturatedSub[int32]  // saturation stops at 16-bit lanes
	_ = npsimd.SaturatedSub[uint64] // saturation stops at 16-bit lanes
	_ = npsimd.ReduceSum[int32]     // horizontal sum is float-only
)
