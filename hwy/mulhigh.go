// Copyright 2025 go-intdiv Authors
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

package hwy

import "math/bits"

// MulHigh returns the high bits of the widening multiplication a * b.
// For n-bit lanes, multiplying produces 2n bits; this returns the upper n bits.
func MulHigh[T Integers](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = mulHigh(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func mulHigh[T Integers](a, b T) T {
	switch av := any(a).(type) {
	case int8:
		product := int16(av) * int16(any(b).(int8))
		return T(any(int8(product >> 8)).(int8))
	case int16:
		product := int32(av) * int32(any(b).(int16))
		return T(any(int16(product >> 16)).(int16))
	case int32:
		product := int64(av) * int64(any(b).(int32))
		return T(any(int32(product >> 32)).(int32))
	case int64:
		return T(any(mulHigh64(av, any(b).(int64))).(int64))
	case uint8:
		product := uint16(av) * uint16(any(b).(uint8))
		return T(any(uint8(product >> 8)).(uint8))
	case uint16:
		product := uint32(av) * uint32(any(b).(uint16))
		return T(any(uint16(product >> 16)).(uint16))
	case uint32:
		product := uint64(av) * uint64(any(b).(uint32))
		return T(any(uint32(product >> 32)).(uint32))
	case uint64:
		hi, _ := bits.Mul64(av, any(b).(uint64))
		return T(any(hi).(uint64))
	default:
		return 0
	}
}

// mulHigh64 computes the high 64 bits of the signed 128-bit product a * b.
// Derived from the unsigned product: interpreting a two's-complement operand
// as unsigned adds 2^64 * other to the product, so subtract it back.
func mulHigh64(a, b int64) int64 {
	uhi, _ := bits.Mul64(uint64(a), uint64(b))
	hi := int64(uhi)
	if a < 0 {
		hi -= b
	}
	if b < 0 {
		hi -= a
	}
	return hi
}
