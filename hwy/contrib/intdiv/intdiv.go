package intdiv

import (
	"github.com/ajroetker/go-intdiv/hwy"
)

// shiftRightUniform shifts every lane right by a runtime amount clamped to
// [0, w-1]. Arithmetic for signed lanes, logical for unsigned lanes.
// Backends that only expose immediate shifts decompose the amount into at
// most log2(w) immediate shifts; the base backend takes the count directly.
func shiftRightUniform[T hwy.Integers](v hwy.Vec[T], sh int) hwy.Vec[T] {
	w := laneBits[T]()
	if sh <= 0 {
		return v
	}
	if sh >= w {
		sh = w - 1
	}
	return hwy.ShiftRight(v, sh)
}

// IntDivU divides each lane of dividend by the divisor captured in params,
// with truncating (C) semantics. The divisor captured in params must be
// nonzero.
func IntDivU[T hwy.UnsignedInts](dividend hwy.Vec[T], params DivisorParamsU[T]) hwy.Vec[T] {
	// Fast path: power of 2
	if params.IsPow2 {
		return shiftRightUniform(dividend, params.Pow2Shift)
	}

	// Division by 1
	if params.Shift1 == 0 && params.Shift2 == 0 && params.Multiplier == 1 {
		return dividend
	}

	// t1 = high lane-width bits of dividend * multiplier. 8- and 16-bit
	// lanes form the product in promoted lanes of twice the width (the
	// multiplier is below 2^W, so it is promoted from a lane-width
	// broadcast and covers every lane); 32- and 64-bit lanes use MulHigh
	// directly.
	var t1 hwy.Vec[T]
	switch vv := any(dividend).(type) {
	case hwy.Vec[uint8]:
		wide := hwy.PromoteU8ToU16(vv)
		prod := hwy.Mul(wide, hwy.PromoteU8ToU16(hwy.Set(uint8(params.Multiplier))))
		t1 = any(hwy.TruncateU16ToU8(hwy.ShiftRight(prod, 8))).(hwy.Vec[T])
	case hwy.Vec[uint16]:
		wide := hwy.PromoteU16ToU32(vv)
		prod := hwy.Mul(wide, hwy.PromoteU16ToU32(hwy.Set(uint16(params.Multiplier))))
		t1 = any(hwy.TruncateU32ToU16(hwy.ShiftRight(prod, 16))).(hwy.Vec[T])
	default:
		t1 = hwy.MulHigh(dividend, hwy.Set(T(params.Multiplier)))
	}

	// a/d = (t1 + ((a - t1) >> s1)) >> s2
	diff := hwy.Sub(dividend, t1)
	shifted := shiftRightUniform(diff, params.Shift1)
	sum := hwy.Add(t1, shifted)
	return shiftRightUniform(sum, params.Shift2)
}

// IntDivS divides each lane of dividend by the divisor captured in params,
// with truncating (C) semantics. The one special lane is
// (minimum value, -1), which saturates to the minimum value. The divisor
// captured in params must be nonzero.
func IntDivS[T hwy.SignedInts](dividend hwy.Vec[T], params DivisorParamsS[T]) hwy.Vec[T] {
	negDivisor := params.Divisor < 0
	w := laneBits[T]()

	// Fast path: power of 2. abs() would overflow on the minimum value, so
	// truncation toward zero uses the bias trick instead:
	// q = (a + bias) >> k with bias = (a < 0) ? (2^k - 1) : 0.
	if params.IsPow2 {
		maskVal := T((uint64(1) << params.Pow2Shift) - 1)
		sign := hwy.ShiftRight(dividend, w-1) // all ones where a < 0
		bias := hwy.And(sign, hwy.Set(maskVal))
		q := shiftRightUniform(hwy.Add(dividend, bias), params.Pow2Shift)
		if negDivisor {
			q = hwy.Neg(q)
		}
		return q
	}

	// Division by +/-1. Neg(minimum value) stays the minimum value.
	if params.Shift == 0 && params.Multiplier == 1 {
		if negDivisor {
			return hwy.Neg(dividend)
		}
		return dividend
	}

	// q0 = a + high lane-width bits of a * multiplier
	var q0 hwy.Vec[T]
	switch vv := any(dividend).(type) {
	case hwy.Vec[int8]:
		wide := hwy.PromoteI8ToI16(vv)
		prod := hwy.Mul(wide, hwy.PromoteI8ToI16(hwy.Set(int8(params.Multiplier))))
		high := any(hwy.TruncateI16ToI8(hwy.ShiftRight(prod, 8))).(hwy.Vec[T])
		q0 = hwy.Add(dividend, high)
	case hwy.Vec[int16]:
		wide := hwy.PromoteI16ToI32(vv)
		prod := hwy.Mul(wide, hwy.PromoteI16ToI32(hwy.Set(int16(params.Multiplier))))
		high := any(hwy.TruncateI32ToI16(hwy.ShiftRight(prod, 16))).(hwy.Vec[T])
		q0 = hwy.Add(dividend, high)
	default:
		mulh := hwy.MulHigh(dividend, hwy.Set(T(params.Multiplier)))
		q0 = hwy.Add(dividend, mulh)
	}

	q0 = shiftRightUniform(q0, params.Shift)

	// Subtract sign(a): the arithmetic shift yields -1 for negative lanes.
	signDividend := hwy.ShiftRight(dividend, w-1)
	q0 = hwy.Sub(q0, signDividend)

	// Apply sign of divisor: q = (q0 XOR -1) - (-1) = -q0
	if negDivisor {
		negOne := hwy.Set(T(-1))
		q0 = hwy.Sub(hwy.Xor(q0, negOne), negOne)
	}

	return q0
}

// IntDivFloorU divides each lane with flooring (Python) semantics. For
// unsigned lanes flooring and truncating division coincide.
func IntDivFloorU[T hwy.UnsignedInts](dividend hwy.Vec[T], params DivisorParamsU[T]) hwy.Vec[T] {
	return IntDivU(dividend, params)
}

// IntDivFloorS divides each lane with flooring (Python) semantics: the
// truncated quotient is decremented where the remainder is nonzero and the
// signs of dividend and divisor differ. (minimum value, -1) saturates to
// the minimum value, as with IntDivS.
func IntDivFloorS[T hwy.SignedInts](dividend hwy.Vec[T], params DivisorParamsS[T]) hwy.Vec[T] {
	q := IntDivS(dividend, params)

	// Floor correction: q - ((a != q*d) && (sign(a) != sign(d))).
	// The product may wrap, but bit-equality with a survives wrapping
	// exactly when a == q*d.
	divisor := hwy.Set(params.Divisor)
	zero := hwy.Zero[T]()
	prod := hwy.Mul(q, divisor)
	neq := hwy.NotEqual(dividend, prod)
	sdiff := hwy.MaskXor(hwy.LessThan(dividend, zero), hwy.LessThan(divisor, zero))
	one := hwy.Set(T(1))

	return hwy.Sub(q, hwy.IfThenElse(hwy.MaskAnd(neq, sdiff), one, zero))
}
