// Package supported instantiates only mapped (operation, lane type)
// pairs; it must type-check without errors.
package supported

import "github.com/Rich-AlFa/go-npsimd/npsimd"

var (
	_ = npsimd.Add[uint8]
	_ = npsimd.Add[int64]
	_ = npsimd.Add[float32]
	_ = npsimd.Sub[uint64]
	_ = npsimd.Sub[int8]
	_ = npsimd.Sub[float64]
	_ = npsimd.Mul[int8]
	_ = npsimd.Mul[uint16]
	_ = npsimd.Mul[uint32]
	_ = npsimd.Mul[float64]
	_ = npsimd.Div[float32]
	_ = npsimd.Div[float64]
	_ = npsimd.SaturatedAdd[uint8]
	_ = npsimd.SaturatedAdd[int16]
	_ = npsimd.SaturatedSub[int8]
	_ = npsimd.SaturatedSub[uint16]
	_ = npsimd.ReduceSum[float32]
	_ = npsimd.ReduceSum[float64]
)
