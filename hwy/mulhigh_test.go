package hwy

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"
)

func TestMulHighU16(t *testing.T) {
	a := Set[uint16](0xFFFF)
	b := Set[uint16](0xFFFF)
	result := MulHigh(a, b)

	// 0xFFFF * 0xFFFF = 0xFFFE0001, high 16 bits are 0xFFFE
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != 0xFFFE {
			t.Errorf("MulHigh: lane %d: got 0x%04X, want 0xFFFE", i, result.data[i])
		}
	}
}

func TestMulHighI16(t *testing.T) {
	a := Set[int16](-30000)
	b := Set[int16](30000)
	result := MulHigh(a, b)

	want := int16((int32(-30000) * int32(30000)) >> 16)
	for i := 0; i < result.NumLanes(); i++ {
		if result.data[i] != want {
			t.Errorf("MulHigh signed: lane %d: got %d, want %d", i, result.data[i], want)
		}
	}
}

func TestMulHighU64(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 0, 0},
		{1, 1, 0},
		{math.MaxUint64, math.MaxUint64, 0xFFFFFFFFFFFFFFFE},
		{1 << 32, 1 << 32, 1},
		{0x5555555555555556, 3, 1}, // magic for /3: high bits recover the quotient scale
	}

	for _, tt := range tests {
		a := Set(tt.a)
		b := Set(tt.b)
		result := MulHigh(a, b)
		for i := 0; i < result.NumLanes(); i++ {
			if result.data[i] != tt.want {
				t.Errorf("MulHigh(%#x, %#x): lane %d: got %#x, want %#x", tt.a, tt.b, i, result.data[i], tt.want)
			}
		}
	}
}

func TestMulHighI64(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{0, 0, 0},
		{-1, 1, -1},
		{-1, -1, 0},
		// MinInt64 * -1 = 2^63 exactly, so the high half is 0
		{math.MinInt64, -1, 0},
		// MinInt64 * MinInt64 = 2^126, high half is 2^62
		{math.MinInt64, math.MinInt64, 1 << 62},
	}

	for _, tt := range tests {
		a := Set(tt.a)
		b := Set(tt.b)
		result := MulHigh(a, b)
		for i := 0; i < result.NumLanes(); i++ {
			if result.data[i] != tt.want {
				t.Errorf("MulHigh(%d, %d): lane %d: got %d, want %d", tt.a, tt.b, i, result.data[i], tt.want)
			}
		}
	}
}

func TestMulHighI64Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 1000 {
		a := int64(rng.Uint64())
		b := int64(rng.Uint64())

		// Reference via unsigned product with sign correction
		uhi, _ := bits.Mul64(uint64(a), uint64(b))
		want := int64(uhi)
		if a < 0 {
			want -= b
		}
		if b < 0 {
			want -= a
		}

		got := MulHigh(Set(a), Set(b)).Data()[0]
		if got != want {
			t.Fatalf("MulHigh(%d, %d) = %d, want %d", a, b, got, want)
		}
	}
}

func TestMulHighI32MatchesWideProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for range 1000 {
		a := int32(rng.Uint32())
		b := int32(rng.Uint32())
		want := int32((int64(a) * int64(b)) >> 32)
		got := MulHigh(Set(a), Set(b)).Data()[0]
		if got != want {
			t.Fatalf("MulHigh(%d, %d) = %d, want %d", a, b, got, want)
		}
	}
}
