package hwy

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(data)

	if v.NumLanes() == 0 {
		t.Error("Load created empty vector")
	}

	for i := 0; i < v.NumLanes() && i < len(data); i++ {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestLoadShortSlice(t *testing.T) {
	data := []uint64{42, 43}
	v := Load(data)

	if v.NumLanes() > len(data) {
		t.Errorf("Load of short slice: got %d lanes, want at most %d", v.NumLanes(), len(data))
	}
	for i := range v.NumLanes() {
		if v.data[i] != data[i] {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.data[i], data[i])
		}
	}
}

func TestStore(t *testing.T) {
	v := Set[uint16](7)
	dst := make([]uint16, MaxLanes[uint16]())
	Store(v, dst)

	for i, val := range dst {
		if val != 7 {
			t.Errorf("Store: element %d: got %v, want 7", i, val)
		}
	}
}

func TestSet(t *testing.T) {
	v := Set[int8](-42)

	if v.NumLanes() != MaxLanes[int8]() {
		t.Errorf("Set: got %d lanes, want %d", v.NumLanes(), MaxLanes[int8]())
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != -42 {
			t.Errorf("Set: lane %d: got %v, want -42", i, v.data[i])
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32]()

	if v.NumLanes() == 0 {
		t.Error("Zero created empty vector")
	}

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.data[i])
		}
	}
}

func TestIota(t *testing.T) {
	v := Iota[uint32]()

	for i := 0; i < v.NumLanes(); i++ {
		if v.data[i] != uint32(i) {
			t.Errorf("Iota: lane %d: got %v, want %d", i, v.data[i], i)
		}
	}
}

func TestAdd(t *testing.T) {
	a := Set[int32](10)
	b := Set[int32](5)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 15 {
			t.Errorf("Add: lane %d: got %v, want 15", i, result.data[i])
		}
	}
}

func TestAddWraps(t *testing.T) {
	a := Set[uint8](250)
	b := Set[uint8](10)
	result := Add(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 4 {
			t.Errorf("Add wrap: lane %d: got %v, want 4", i, result.data[i])
		}
	}
}

func TestSub(t *testing.T) {
	a := Set[int16](10)
	b := Set[int16](25)
	result := Sub(a, b)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -15 {
			t.Errorf("Sub: lane %d: got %v, want -15", i, result.data[i])
		}
	}
}

func TestMulWraps(t *testing.T) {
	a := Set[uint16](300)
	b := Set[uint16](300)
	result := Mul(a, b)

	// 300*300 = 90000 = 0x15F90, low 16 bits are 0x5F90 = 24464
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 24464 {
			t.Errorf("Mul wrap: lane %d: got %v, want 24464", i, result.data[i])
		}
	}
}

func TestNeg(t *testing.T) {
	v := Set[int32](7)
	result := Neg(v)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -7 {
			t.Errorf("Neg: lane %d: got %v, want -7", i, result.data[i])
		}
	}
}

func TestNegMinValue(t *testing.T) {
	v := Set[int8](math.MinInt8)
	result := Neg(v)

	// Two's complement: -(-128) wraps back to -128
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != math.MinInt8 {
			t.Errorf("Neg min: lane %d: got %v, want %v", i, result.data[i], int8(math.MinInt8))
		}
	}
}

func TestBitwiseOps(t *testing.T) {
	a := Set[uint32](0b1100)
	b := Set[uint32](0b1010)

	checks := []struct {
		name string
		got  Vec[uint32]
		want uint32
	}{
		{"And", And(a, b), 0b1000},
		{"Or", Or(a, b), 0b1110},
		{"Xor", Xor(a, b), 0b0110},
		{"Not", Not(a), ^uint32(0b1100)},
	}

	for _, c := range checks {
		for i := 0; i < c.got.NumLanes(); i++ {
			if c.got.data[i] != c.want {
				t.Errorf("%s: lane %d: got %#x, want %#x", c.name, i, c.got.data[i], c.want)
			}
		}
	}
}

func TestShiftLeft(t *testing.T) {
	v := Set[uint32](3)
	result := ShiftLeft(v, 4)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 48 {
			t.Errorf("ShiftLeft: lane %d: got %v, want 48", i, result.data[i])
		}
	}
}

func TestShiftRightLogical(t *testing.T) {
	v := Set[uint8](0x80)
	result := ShiftRight(v, 7)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 1 {
			t.Errorf("ShiftRight unsigned: lane %d: got %v, want 1", i, result.data[i])
		}
	}
}

func TestShiftRightArithmetic(t *testing.T) {
	v := Set[int32](-8)
	result := ShiftRight(v, 2)

	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -2 {
			t.Errorf("ShiftRight signed: lane %d: got %v, want -2", i, result.data[i])
		}
	}

	// Sign bit replication: -1 >> k stays -1
	v = Set[int32](-1)
	result = ShiftRight(v, 31)
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != -1 {
			t.Errorf("ShiftRight sign fill: lane %d: got %v, want -1", i, result.data[i])
		}
	}
}

func TestComparisons(t *testing.T) {
	a := Load([]int32{1, 5, 3, 7})
	b := Load([]int32{1, 3, 5, 7})

	eq := Equal(a, b)
	ne := NotEqual(a, b)
	lt := LessThan(a, b)
	gt := GreaterThan(a, b)

	wantEq := []bool{true, false, false, true}
	wantLt := []bool{false, false, true, false}
	wantGt := []bool{false, true, false, false}

	n := min(4, eq.NumLanes())
	for i := range n {
		if eq.GetBit(i) != wantEq[i] {
			t.Errorf("Equal: lane %d: got %v, want %v", i, eq.GetBit(i), wantEq[i])
		}
		if ne.GetBit(i) == wantEq[i] {
			t.Errorf("NotEqual: lane %d: got %v, want %v", i, ne.GetBit(i), !wantEq[i])
		}
		if lt.GetBit(i) != wantLt[i] {
			t.Errorf("LessThan: lane %d: got %v, want %v", i, lt.GetBit(i), wantLt[i])
		}
		if gt.GetBit(i) != wantGt[i] {
			t.Errorf("GreaterThan: lane %d: got %v, want %v", i, gt.GetBit(i), wantGt[i])
		}
	}
}

func TestMaskLogic(t *testing.T) {
	a := Load([]uint8{1, 1, 0, 0})
	b := Load([]uint8{1, 0, 1, 0})
	one := Set[uint8](1)

	ma := Equal(a, one)
	mb := Equal(b, one)

	and := MaskAnd(ma, mb)
	xor := MaskXor(ma, mb)

	wantAnd := []bool{true, false, false, false}
	wantXor := []bool{false, true, true, false}

	n := min(4, and.NumLanes())
	for i := range n {
		if and.GetBit(i) != wantAnd[i] {
			t.Errorf("MaskAnd: lane %d: got %v, want %v", i, and.GetBit(i), wantAnd[i])
		}
		if xor.GetBit(i) != wantXor[i] {
			t.Errorf("MaskXor: lane %d: got %v, want %v", i, xor.GetBit(i), wantXor[i])
		}
	}
}

func TestIfThenElse(t *testing.T) {
	a := Load([]int32{1, 2, 3, 4})
	b := Load([]int32{1, 9, 3, 9})

	mask := Equal(a, b)
	result := IfThenElse(mask, Set[int32](100), Set[int32](-100))

	want := []int32{100, -100, 100, -100}
	n := min(4, result.NumLanes())
	for i := range n {
		if result.data[i] != want[i] {
			t.Errorf("IfThenElse: lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestMaskLoadStore(t *testing.T) {
	maxLanes := MaxLanes[int64]()
	src := make([]int64, maxLanes)
	for i := range src {
		src[i] = int64(i + 1)
	}

	mask := TailMask[int64](2)
	v := MaskLoad(mask, src)

	for i := 0; i < v.NumLanes(); i++ {
		want := int64(0)
		if i < 2 {
			want = src[i]
		}
		if v.data[i] != want {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, v.data[i], want)
		}
	}

	dst := make([]int64, maxLanes)
	for i := range dst {
		dst[i] = -1
	}
	MaskStore(mask, v, dst)

	for i, val := range dst {
		want := int64(-1)
		if i < 2 {
			want = src[i]
		}
		if val != want {
			t.Errorf("MaskStore: element %d: got %v, want %v", i, val, want)
		}
	}
}

func TestMaxLanes(t *testing.T) {
	width := CurrentWidth()
	if width == 0 {
		t.Fatal("CurrentWidth() = 0")
	}
	if got := MaxLanes[uint8](); got != width {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", got, width)
	}
	if got := MaxLanes[uint64](); got != width/8 {
		t.Errorf("MaxLanes[uint64]() = %d, want %d", got, width/8)
	}
}
