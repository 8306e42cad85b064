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

// ===== Float32x8 constructors =====

// BroadcastFloat32x8 creates a vector with all lanes set to the given value.
func BroadcastFloat32x8(v float32) Float32x8 {
	return Float32x8{v, v, v, v, v, v, v, v}
}

// LoadFloat32x8Slice loads 8 float32 values from an unaligned slice.
func LoadFloat32x8Slice(s []float32) Float32x8 {
	return Float32x8(s[:8])
}

// ZeroFloat32x8 returns a zero vector.
func ZeroFloat32x8() Float32x8 {
	return Float32x8{}
}

// ===== Float32x8 methods =====

// Add performs element-wise addition.
func (v Float32x8) Add(other Float32x8) Float32x8 {
	var result Float32x8
	for i := range result {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Each product is rounded to float32 before it can feed a later Add, so no
// target fuses Mul+Add into an FMA and lane results match the scalar path.
func (v Float32x8) Mul(other Float32x8) Float32x8 {
	var result Float32x8
	for i := range result {
		result[i] = float32(v[i] * other[i])
	}
	return result
}

// LessEqual returns a mask where v <= other.
// NaN lanes compare false (ordered, quiet).
func (v Float32x8) LessEqual(other Float32x8) Mask32x8 {
	var m Mask32x8
	for i := range v {
		if v[i] <= other[i] {
			m |= 1 << i
		}
	}
	return m
}

// AsUint32x8 reinterprets bits as uint32.
func (v Float32x8) AsUint32x8() Uint32x8 {
	var result Uint32x8
	for i := range result {
		result[i] = math.Float32bits(v[i])
	}
	return result
}

// StoreSlice stores the vector to an unaligned slice.
func (v Float32x8) StoreSlice(s []float32) {
	copy(s[:8], v[:])
}

// GetLane extracts the element at the given lane index.
func (v Float32x8) GetLane(lane int) float32 {
	return v[lane]
}
