package npsimd

import (
	"math"
	"testing"
)

func TestSaturatedAddUint8(t *testing.T) {
	a := Load([]uint8{250, 100, 0, 255})
	b := Load([]uint8{10, 50, 100, 1})
	result := SaturatedAdd(a, b)

	expected := []uint8{255, 150, 100, 255} // 250+10 saturates to 255
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedAdd uint8: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedAddInt8(t *testing.T) {
	a := Load([]int8{120, -120, 50, -50})
	b := Load([]int8{10, -10, 50, -50})
	result := SaturatedAdd(a, b)

	expected := []int8{127, -128, 100, -100} // 120+10=130 saturates to 127
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedAdd int8: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedAddUint16(t *testing.T) {
	a := Load([]uint16{65530, 100, 0, 65535})
	b := Load([]uint16{10, 50, 100, 1})
	result := SaturatedAdd(a, b)

	expected := []uint16{65535, 150, 100, 65535}
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedAdd uint16: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedAddInt16(t *testing.T) {
	a := Load([]int16{32760, -32760, 1000, -1000})
	b := Load([]int16{10, -10, 1000, -1000})
	result := SaturatedAdd(a, b)

	expected := []int16{32767, -32768, 2000, -2000}
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedAdd int16: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedSubUint8(t *testing.T) {
	a := Load([]uint8{10, 100, 0, 255})
	b := Load([]uint8{20, 50, 100, 1})
	result := SaturatedSub(a, b)

	expected := []uint8{0, 50, 0, 254} // 10-20 saturates to 0
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedSub uint8: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedSubInt8(t *testing.T) {
	a := Load([]int8{-120, 120, 50, -50})
	b := Load([]int8{10, -10, 50, -50})
	result := SaturatedSub(a, b)

	expected := []int8{-128, 127, 0, 0} // -120-10=-130 saturates to -128
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedSub int8: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedSubUint16(t *testing.T) {
	a := Load([]uint16{5, 1000, 0, 65535})
	b := Load([]uint16{10, 500, 1, 65535})
	result := SaturatedSub(a, b)

	expected := []uint16{0, 500, 0, 0}
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedSub uint16: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedSubInt16(t *testing.T) {
	a := Load([]int16{-32760, 32760, 0, 100})
	b := Load([]int16{10, -10, 0, 200})
	result := SaturatedSub(a, b)

	expected := []int16{-32768, 32767, 0, -100}
	for i, want := range expected {
		if got := GetLane(result, i); got != want {
			t.Errorf("SaturatedSub int16: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestSaturatedExtremes(t *testing.T) {
	u8 := SaturatedAdd(Set[uint8](math.MaxUint8), Set[uint8](math.MaxUint8))
	for i, got := range u8.Data() {
		if got != math.MaxUint8 {
			t.Errorf("SaturatedAdd uint8 max+max: lane %d: got %d, want 255", i, got)
		}
	}

	i8hi := SaturatedAdd(Set[int8](math.MaxInt8), Set[int8](math.MaxInt8))
	for i, got := range i8hi.Data() {
		if got != math.MaxInt8 {
			t.Errorf("SaturatedAdd int8 max+max: lane %d: got %d, want 127", i, got)
		}
	}

	i8lo := SaturatedAdd(Set[int8](math.MinInt8), Set[int8](math.MinInt8))
	for i, got := range i8lo.Data() {
		if got != math.MinInt8 {
			t.Errorf("SaturatedAdd int8 min+min: lane %d: got %d, want -128", i, got)
		}
	}

	u16 := SaturatedSub(Zero[uint16](), Set[uint16](math.MaxUint16))
	for i, got := range u16.Data() {
		if got != 0 {
			t.Errorf("SaturatedSub uint16 0-max: lane %d: got %d, want 0", i, got)
		}
	}

	i16 := SaturatedSub(Set[int16](math.MinInt16), Set[int16](math.MaxInt16))
	for i, got := range i16.Data() {
		if got != math.MinInt16 {
			t.Errorf("SaturatedSub int16 min-max: lane %d: got %d, want -32768", i, got)
		}
	}
}
