package intdiv

import (
	"math/bits"

	"github.com/ajroetker/go-intdiv/hwy"
)

// This file provides the bulk entry points: whole-slice division in place,
// and one-shot division of a single vector. The slice entry points derive
// the divisor parameters once, then stride through full vectors with a
// masked tail; the one-shot entry points divide one vector, and for
// unsigned power-of-two divisors skip the derivation.

// DivideArrayByScalar divides every element of array by divisor in place,
// with truncating (C) semantics. Panics if divisor is zero. Works for all
// eight integer element types.
func DivideArrayByScalar[T hwy.Integers](array []T, divisor T) {
	if divisor == 0 {
		panic("intdiv: division by zero in DivideArrayByScalar")
	}
	switch arr := any(array).(type) {
	case []uint8:
		divideArrayU(arr, any(divisor).(uint8))
	case []uint16:
		divideArrayU(arr, any(divisor).(uint16))
	case []uint32:
		divideArrayU(arr, any(divisor).(uint32))
	case []uint64:
		divideArrayU(arr, any(divisor).(uint64))
	case []int8:
		divideArrayS(arr, any(divisor).(int8))
	case []int16:
		divideArrayS(arr, any(divisor).(int16))
	case []int32:
		divideArrayS(arr, any(divisor).(int32))
	case []int64:
		divideArrayS(arr, any(divisor).(int64))
	default:
		panic("intdiv: unsupported lane type")
	}
}

// FloorDivideArrayByScalar divides every element of array by divisor in
// place, with flooring (Python) semantics. Panics if divisor is zero.
func FloorDivideArrayByScalar[T hwy.Integers](array []T, divisor T) {
	if divisor == 0 {
		panic("intdiv: division by zero in FloorDivideArrayByScalar")
	}
	switch arr := any(array).(type) {
	case []uint8:
		divideArrayU(arr, any(divisor).(uint8)) // same as trunc for unsigned
	case []uint16:
		divideArrayU(arr, any(divisor).(uint16))
	case []uint32:
		divideArrayU(arr, any(divisor).(uint32))
	case []uint64:
		divideArrayU(arr, any(divisor).(uint64))
	case []int8:
		floorDivideArrayS(arr, any(divisor).(int8))
	case []int16:
		floorDivideArrayS(arr, any(divisor).(int16))
	case []int32:
		floorDivideArrayS(arr, any(divisor).(int32))
	case []int64:
		floorDivideArrayS(arr, any(divisor).(int64))
	default:
		panic("intdiv: unsupported lane type")
	}
}

func divideArrayU[T hwy.UnsignedInts](array []T, divisor T) {
	params := ComputeDivisorParamsU(divisor)
	n := hwy.MaxLanes[T]()

	i := 0
	for ; i+n <= len(array); i += n {
		vec := hwy.Load(array[i:])
		hwy.Store(IntDivU(vec, params), array[i:])
	}

	// Handle remainder
	if i < len(array) {
		mask := hwy.TailMask[T](len(array) - i)
		vec := hwy.MaskLoad(mask, array[i:])
		hwy.MaskStore(mask, IntDivU(vec, params), array[i:])
	}
}

func divideArrayS[T hwy.SignedInts](array []T, divisor T) {
	params := ComputeDivisorParamsS(divisor)
	n := hwy.MaxLanes[T]()

	i := 0
	for ; i+n <= len(array); i += n {
		vec := hwy.Load(array[i:])
		hwy.Store(IntDivS(vec, params), array[i:])
	}

	// Handle remainder
	if i < len(array) {
		mask := hwy.TailMask[T](len(array) - i)
		vec := hwy.MaskLoad(mask, array[i:])
		hwy.MaskStore(mask, IntDivS(vec, params), array[i:])
	}
}

func floorDivideArrayS[T hwy.SignedInts](array []T, divisor T) {
	params := ComputeDivisorParamsS(divisor)
	n := hwy.MaxLanes[T]()

	i := 0
	for ; i+n <= len(array); i += n {
		vec := hwy.Load(array[i:])
		hwy.Store(IntDivFloorS(vec, params), array[i:])
	}

	// Handle remainder
	if i < len(array) {
		mask := hwy.TailMask[T](len(array) - i)
		vec := hwy.MaskLoad(mask, array[i:])
		hwy.MaskStore(mask, IntDivFloorS(vec, params), array[i:])
	}
}

// DivideByScalar divides a single vector by divisor with truncating
// semantics, deriving the parameters on the fly. Panics if divisor is
// zero. When the same divisor is reused, derive the parameters once with
// ComputeDivisorParamsU / ComputeDivisorParamsS instead.
func DivideByScalar[T hwy.Integers](dividend hwy.Vec[T], divisor T) hwy.Vec[T] {
	if divisor == 0 {
		panic("intdiv: division by zero in DivideByScalar")
	}
	switch vec := any(dividend).(type) {
	case hwy.Vec[uint8]:
		return any(divideByScalarU(vec, any(divisor).(uint8))).(hwy.Vec[T])
	case hwy.Vec[uint16]:
		return any(divideByScalarU(vec, any(divisor).(uint16))).(hwy.Vec[T])
	case hwy.Vec[uint32]:
		return any(divideByScalarU(vec, any(divisor).(uint32))).(hwy.Vec[T])
	case hwy.Vec[uint64]:
		return any(divideByScalarU(vec, any(divisor).(uint64))).(hwy.Vec[T])
	case hwy.Vec[int8]:
		return any(IntDivS(vec, ComputeDivisorParamsS(any(divisor).(int8)))).(hwy.Vec[T])
	case hwy.Vec[int16]:
		return any(IntDivS(vec, ComputeDivisorParamsS(any(divisor).(int16)))).(hwy.Vec[T])
	case hwy.Vec[int32]:
		return any(IntDivS(vec, ComputeDivisorParamsS(any(divisor).(int32)))).(hwy.Vec[T])
	case hwy.Vec[int64]:
		return any(IntDivS(vec, ComputeDivisorParamsS(any(divisor).(int64)))).(hwy.Vec[T])
	default:
		panic("intdiv: unsupported lane type")
	}
}

// FloorDivideByScalar divides a single vector by divisor with flooring
// semantics, deriving the parameters on the fly. Panics if divisor is zero.
func FloorDivideByScalar[T hwy.Integers](dividend hwy.Vec[T], divisor T) hwy.Vec[T] {
	if divisor == 0 {
		panic("intdiv: division by zero in FloorDivideByScalar")
	}
	switch vec := any(dividend).(type) {
	case hwy.Vec[uint8]:
		return any(divideByScalarU(vec, any(divisor).(uint8))).(hwy.Vec[T])
	case hwy.Vec[uint16]:
		return any(divideByScalarU(vec, any(divisor).(uint16))).(hwy.Vec[T])
	case hwy.Vec[uint32]:
		return any(divideByScalarU(vec, any(divisor).(uint32))).(hwy.Vec[T])
	case hwy.Vec[uint64]:
		return any(divideByScalarU(vec, any(divisor).(uint64))).(hwy.Vec[T])
	case hwy.Vec[int8]:
		return any(IntDivFloorS(vec, ComputeDivisorParamsS(any(divisor).(int8)))).(hwy.Vec[T])
	case hwy.Vec[int16]:
		return any(IntDivFloorS(vec, ComputeDivisorParamsS(any(divisor).(int16)))).(hwy.Vec[T])
	case hwy.Vec[int32]:
		return any(IntDivFloorS(vec, ComputeDivisorParamsS(any(divisor).(int32)))).(hwy.Vec[T])
	case hwy.Vec[int64]:
		return any(IntDivFloorS(vec, ComputeDivisorParamsS(any(divisor).(int64)))).(hwy.Vec[T])
	default:
		panic("intdiv: unsupported lane type")
	}
}

// divideByScalarU is the unsigned one-shot path, with a pow2 shortcut that
// skips parameter derivation entirely.
func divideByScalarU[T hwy.UnsignedInts](dividend hwy.Vec[T], divisor T) hwy.Vec[T] {
	if isPow2(uint64(divisor)) {
		return shiftRightUniform(dividend, bits.TrailingZeros64(uint64(divisor)))
	}
	return IntDivU(dividend, ComputeDivisorParamsU(divisor))
}
