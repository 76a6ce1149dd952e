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

// Widening and narrowing conversions between lane widths. Promotions
// extend every lane of the input; truncating narrowings keep the low bits
// of every lane. The element count is preserved in both directions.

// PromoteI8ToI16 widens int8 to int16 (sign-extended).
func PromoteI8ToI16(v Vec[int8]) Vec[int16] {
	result := make([]int16, len(v.data))
	for i, val := range v.data {
		result[i] = int16(val)
	}
	return Vec[int16]{data: result}
}

// PromoteI16ToI32 widens int16 to int32 (sign-extended).
func PromoteI16ToI32(v Vec[int16]) Vec[int32] {
	result := make([]int32, len(v.data))
	for i, val := range v.data {
		result[i] = int32(val)
	}
	return Vec[int32]{data: result}
}

// PromoteU8ToU16 widens uint8 to uint16 (zero-extended).
func PromoteU8ToU16(v Vec[uint8]) Vec[uint16] {
	result := make([]uint16, len(v.data))
	for i, val := range v.data {
		result[i] = uint16(val)
	}
	return Vec[uint16]{data: result}
}

// PromoteU16ToU32 widens uint16 to uint32 (zero-extended).
func PromoteU16ToU32(v Vec[uint16]) Vec[uint32] {
	result := make([]uint32, len(v.data))
	for i, val := range v.data {
		result[i] = uint32(val)
	}
	return Vec[uint32]{data: result}
}

// TruncateI16ToI8 narrows int16 to int8 (truncating, not saturating).
// Only the lower 8 bits are kept.
func TruncateI16ToI8(v Vec[int16]) Vec[int8] {
	result := make([]int8, len(v.data))
	for i, val := range v.data {
		result[i] = int8(val)
	}
	return Vec[int8]{data: result}
}

// TruncateI32ToI16 narrows int32 to int16 (truncating, not saturating).
// Only the lower 16 bits are kept.
func TruncateI32ToI16(v Vec[int32]) Vec[int16] {
	result := make([]int16, len(v.data))
	for i, val := range v.data {
		result[i] = int16(val)
	}
	return Vec[int16]{data: result}
}

// TruncateU16ToU8 narrows uint16 to uint8 (truncating, not saturating).
// Only the lower 8 bits are kept.
func TruncateU16ToU8(v Vec[uint16]) Vec[uint8] {
	result := make([]uint8, len(v.data))
	for i, val := range v.data {
		result[i] = uint8(val)
	}
	return Vec[uint8]{data: result}
}

// TruncateU32ToU16 narrows uint32 to uint16 (truncating, not saturating).
// Only the lower 16 bits are kept.
func TruncateU32ToU16(v Vec[uint32]) Vec[uint16] {
	result := make([]uint16, len(v.data))
	for i, val := range v.data {
		result[i] = uint16(val)
	}
	return Vec[uint16]{data: result}
}
