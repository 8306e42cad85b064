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

// Package hwy provides the fixed-width lane types used by the batch
// generator and the sampling kernels.
//
// The set is deliberately closed: an 8-lane float32 vector, a 4-lane uint64
// vector (two of them hold the 8 generator sub-streams), an 8-lane uint32
// vector used as the narrowing target, and a packed comparison mask. All of
// them are plain arrays with value semantics, so they can be copied,
// compared with == and kept on the stack.
//
// Basic usage:
//
//	x := hwy.LoadFloat32x8Slice(xs)
//	y := hwy.LoadFloat32x8Slice(ys)
//	r := x.Mul(x).Add(y.Mul(y))
//	hits += r.LessEqual(hwy.BroadcastFloat32x8(1)).CountTrue()
//
// Width and alignment mismatches are caller contracts: loads and stores
// index the slice directly and panic on short input like any Go slice
// access. No operation returns an error.
package hwy

// Float32x8 is a 256-bit vector of 8 float32 lanes.
type Float32x8 [8]float32

// Uint64x4 is a 256-bit vector of 4 uint64 lanes.
type Uint64x4 [4]uint64

// Uint32x8 is a 256-bit vector of 8 uint32 lanes.
type Uint32x8 [8]uint32

// Mask32x8 is the packed result of an 8-lane comparison.
// Bit i is set when lane i compared true; bits 8..31 are always zero.
type Mask32x8 uint32

// Lane counts for the fixed-width types.
const (
	Float32x8Lanes = 8
	Uint64x4Lanes  = 4
	Uint32x8Lanes  = 8
)
