// Copyright 2025 go-highway Authors
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

import "math"

// ===== Uint64x4 constructors =====

// BroadcastUint64x4 creates a vector with all lanes set to the given value.
func BroadcastUint64x4(v uint64) Uint64x4 {
	return Uint64x4{v, v, v, v}
}

// LoadUint64x4Slice loads 4 uint64 values from an unaligned slice.
func LoadUint64x4Slice(s []uint64) Uint64x4 {
	return Uint64x4(s[:4])
}

// ===== Uint64x4 methods =====

// Add performs element-wise addition (wrapping).
func (v Uint64x4) Add(other Uint64x4) Uint64x4 {
	return Uint64x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Mul performs element-wise multiplication, keeping the low 64 bits.
// For lanes below 2^32 this equals the even-lane widening multiply
// (VPMULUDQ) the generator relies on.
func (v Uint64x4) Mul(other Uint64x4) Uint64x4 {
	return Uint64x4{v[0] * other[0], v[1] * other[1], v[2] * other[2], v[3] * other[3]}
}

// ShiftAllRight shifts all elements right (logical) by the given count.
func (v Uint64x4) ShiftAllRight(count uint) Uint64x4 {
	return Uint64x4{v[0] >> count, v[1] >> count, v[2] >> count, v[3] >> count}
}

// And performs element-wise bitwise AND.
func (v Uint64x4) And(other Uint64x4) Uint64x4 {
	return Uint64x4{v[0] & other[0], v[1] & other[1], v[2] & other[2], v[3] & other[3]}
}

// StoreSlice stores the vector to an unaligned slice.
func (v Uint64x4) StoreSlice(s []uint64) {
	copy(s[:4], v[:])
}

// ===== Uint32x8 constructors =====

// BroadcastUint32x8 creates a vector with all lanes set to the given value.
func BroadcastUint32x8(v uint32) Uint32x8 {
	return Uint32x8{v, v, v, v, v, v, v, v}
}

// LoadUint32x8Slice loads 8 uint32 values from an unaligned slice.
func LoadUint32x8Slice(s []uint32) Uint32x8 {
	return Uint32x8(s[:8])
}

// ===== Uint32x8 methods =====

// ConvertToFloat32 converts each lane numerically to float32, rounding to
// nearest. Lanes above 2^24 lose low bits as any float32 conversion does.
func (v Uint32x8) ConvertToFloat32() Float32x8 {
	var result Float32x8
	for i := range result {
		result[i] = float32(v[i])
	}
	return result
}

// AsFloat32x8 reinterprets bits as float32.
func (v Uint32x8) AsFloat32x8() Float32x8 {
	var result Float32x8
	for i := range result {
		result[i] = math.Float32frombits(v[i])
	}
	return result
}

// StoreSlice stores the vector to an unaligned slice.
func (v Uint32x8) StoreSlice(s []uint32) {
	copy(s[:8], v[:])
}

// GetLane extracts the element at the given lane index.
func (v Uint32x8) GetLane(lane int) uint32 {
	return v[lane]
}
