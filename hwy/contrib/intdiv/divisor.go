package intdiv

import (
	"math/bits"
	"unsafe"

	"github.com/ajroetker/go-intdiv/hwy"
)

// DivisorParamsU holds the precomputed parameters for unsigned division by
// a fixed divisor.
//
// Multiplier is the magic constant m = ceil(2^(W+l) / d) - 2^W for lane
// width W and l = ceil(log2 d). For 8- and 16-bit lanes it is applied with
// a widened multiply; for 32- and 64-bit lanes it is applied with MulHigh.
type DivisorParamsU[T hwy.UnsignedInts] struct {
	Multiplier uint64
	Shift1     int
	Shift2     int
	IsPow2     bool
	Pow2Shift  int // Only valid if IsPow2
	Divisor    T   // Original divisor for shortcut and fallback paths
}

// DivisorParamsS holds the precomputed parameters for signed division by a
// fixed divisor. Multiplier holds the magic constant for |d| truncated to
// the lane width and sign-extended: with sh = ceil(log2 |d|) - 1 the
// constant always has its top lane bit set, so the stored pattern is
// negative and the evaluator's "add the dividend" step supplies the
// missing 2^W * a. The sign of the divisor is reapplied from Divisor at
// evaluation time.
type DivisorParamsS[T hwy.SignedInts] struct {
	Multiplier int64
	Shift      int
	Divisor    T // Original divisor for sign application and floor division
	IsPow2     bool
	Pow2Shift  int // Only valid if IsPow2
}

// laneBits returns the width of T in bits.
func laneBits[T hwy.Integers]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// isPow2 reports whether x is a positive power of two.
func isPow2(x uint64) bool {
	return x > 0 && x&(x-1) == 0
}

// divideHighBy computes the low 64 bits of (high * 2^64) / divisor for
// divisor != 0. Used by 64-bit parameter derivation, where the magic
// constant is a 128-by-64-bit quotient.
func divideHighBy(high, divisor uint64) uint64 {
	// The low 64 bits of the quotient depend only on high % divisor.
	high %= divisor
	if high == 0 {
		return 0
	}
	quo, _ := bits.Div64(high, 0, divisor)
	return quo
}

// ComputeDivisorParamsU derives the multiply/shift parameters for unsigned
// division by divisor. Panics if divisor is zero. The returned record is an
// immutable value and may be shared freely.
func ComputeDivisorParamsU[T hwy.UnsignedInts](divisor T) DivisorParamsU[T] {
	if divisor == 0 {
		panic("intdiv: division by zero in ComputeDivisorParamsU")
	}
	params := DivisorParamsU[T]{Divisor: divisor}

	d := uint64(divisor)
	if isPow2(d) {
		params.IsPow2 = true
		params.Pow2Shift = bits.TrailingZeros64(d)
		params.Multiplier = 1
		return params
	}

	if divisor == 1 {
		params.Multiplier = 1
		return params
	}

	w := laneBits[T]()
	l := bits.Len64(d - 1) // 2^(l-1) < d <= 2^l
	// 2^l - d; for l == 64 the shift wraps to zero and the subtraction
	// yields -d mod 2^64, which is the same residue.
	twoLMinusD := (uint64(1) << l) - d

	var m uint64
	if w == 64 {
		m = divideHighBy(twoLMinusD, d) + 1
	} else {
		m = (twoLMinusD<<w)/d + 1
	}

	params.Multiplier = m
	params.Shift1 = 1
	params.Shift2 = l - 1
	return params
}

// ComputeDivisorParamsS derives the multiply/shift parameters for signed
// division by divisor. Panics if divisor is zero. The returned record is an
// immutable value and may be shared freely.
func ComputeDivisorParamsS[T hwy.SignedInts](divisor T) DivisorParamsS[T] {
	if divisor == 0 {
		panic("intdiv: division by zero in ComputeDivisorParamsS")
	}
	params := DivisorParamsS[T]{Divisor: divisor}

	w := laneBits[T]()
	// |d| in unsigned lane width. |minimum value| wraps to 2^(w-1).
	absD := uint64(divisor)
	if divisor < 0 {
		absD = -absD
	}
	absD &= (^uint64(0)) >> (64 - w)

	if isPow2(absD) {
		params.IsPow2 = true
		params.Pow2Shift = bits.TrailingZeros64(absD)
		params.Multiplier = 1
		return params
	}

	if absD == 1 {
		params.Multiplier = 1
		return params
	}

	if absD == uint64(1)<<(w-1) {
		// divisor is the minimum value, whose magnitude wrapped above.
		// Unreachable while the pow2 check precedes it; kept so the
		// derivation covers the full case analysis.
		params.Multiplier = truncateToLane(uint64(1)<<(w-1)+1, w)
		params.Shift = w - 2
		return params
	}

	sh := bits.Len64(absD-1) - 1 // 2^sh < |d| <= 2^(sh+1), sh <= w-2
	var m uint64
	if w == 64 {
		m = divideHighBy(uint64(1)<<sh, absD) + 1
	} else {
		m = (uint64(1)<<(w+sh))/absD + 1
	}

	params.Multiplier = truncateToLane(m, w)
	params.Shift = sh
	return params
}

// truncateToLane keeps the low w bits of m and sign-extends them.
func truncateToLane(m uint64, w int) int64 {
	switch w {
	case 8:
		return int64(int8(m))
	case 16:
		return int64(int16(m))
	case 32:
		return int64(int32(m))
	default:
		return int64(m)
	}
}
