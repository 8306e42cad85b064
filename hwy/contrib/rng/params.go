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

package rng

import "fmt"

const (
	// Modulus is the Mersenne prime 2^31 − 1.
	Modulus uint64 = 2147483647
	// Multiplier is the MINSTD multiplier (prime).
	Multiplier uint64 = 48271
	// Skip8 is Multiplier^8 mod Modulus.
	Skip8 uint64 = 854716505
	// Lanes is the number of sub-streams advanced per batch round.
	Lanes = 8
	// DefaultSeed matches std::minstd_rand's default seed.
	DefaultSeed uint32 = 1

	foldMask  uint64 = 0x7FFFFFFF
	foldShift        = 31
)

// Norm maps a generator output onto the unit interval: 1/(Max − Min + 1).
// In float32 this is exactly 2^-31. Outputs are never 0; the 64 largest
// states round up to exactly 1.0 after the float32 conversion.
const Norm = float32(1) / float32(Modulus-1)

// Min returns the smallest value Uint32 can return.
func Min() uint32 { return 1 }

// Max returns the largest value Uint32 can return.
func Max() uint32 { return uint32(Modulus - 1) }

// Params holds the multipliers a generator runs with. The modulus is fixed
// at 2^31 − 1 since the fold reduction depends on it.
type Params struct {
	// Multiplier is the serial step multiplier a.
	Multiplier uint64
	// Skip is the per-round lane multiplier; it must equal a^Lanes mod m
	// for the batch path to track the serial path.
	Skip uint64
}

// DefaultParams returns the MINSTD parameters (a = 48271, skip = a^8 mod m).
func DefaultParams() Params {
	return Params{Multiplier: Multiplier, Skip: Skip8}
}

// NewParams returns Params for multiplier a with the skip derived from it.
func NewParams(a uint64) Params {
	return Params{Multiplier: a, Skip: SkipAhead(a, Lanes)}
}

// Validate checks that both multipliers are usable residues. It does not
// check that Skip matches Multiplier; see Consistent.
func (p Params) Validate() error {
	if p.Multiplier < 2 || p.Multiplier >= Modulus {
		return fmt.Errorf("rng: multiplier %d outside [2, %d]", p.Multiplier, Modulus-1)
	}
	if p.Skip < 1 || p.Skip >= Modulus {
		return fmt.Errorf("rng: skip %d outside [1, %d]", p.Skip, Modulus-1)
	}
	return nil
}

// Consistent reports whether Skip equals Multiplier^Lanes mod Modulus.
func (p Params) Consistent() bool {
	return p.Skip == SkipAhead(p.Multiplier, Lanes)
}

// SkipAhead returns a^k mod Modulus by repeated squaring, i.e. the
// multiplier that advances a serial stream by k steps at once.
func SkipAhead(a, k uint64) uint64 {
	result := uint64(1)
	base := a % Modulus
	for k > 0 {
		if k&1 != 0 {
			result = mulMod(result, base)
		}
		base = mulMod(base, base)
		k >>= 1
	}
	return result
}

// fold is one round of the Mersenne reduction. For v < 2^62 the result is
// congruent to v and below 2^32.
func fold(v uint64) uint64 {
	return (v >> foldShift) + (v & foldMask)
}

// mulMod returns x·y mod Modulus for x, y < Modulus.
func mulMod(x, y uint64) uint64 {
	r := fold(fold(x * y))
	if r >= Modulus {
		r -= Modulus
	}
	return r
}
