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

import (
	"fmt"

	"github.com/ajroetker/hwypi/hwy"
)

// MinStd is a Lehmer generator with a serial path (Uint32, Float32) and an
// eight-lane batch path (Fill, Generate) over the same state.
type MinStd struct {
	params Params
	state  uint64
}

// New returns a MinStd with the default MINSTD parameters.
func New(seed uint32) *MinStd {
	return NewWithParams(seed, DefaultParams())
}

// NewWithParams returns a MinStd running with p.
// It panics if p fails Validate.
func NewWithParams(seed uint32, p Params) *MinStd {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	g := &MinStd{params: p}
	g.Seed(seed)
	return g
}

// Seed resets the generator. The seed is reduced into [1, m−1] (a seed
// congruent to 0 becomes 1) and then stepped once, so seed 1 starts at a.
func (g *MinStd) Seed(seed uint32) {
	s := uint64(seed) % Modulus
	if s == 0 {
		s = 1
	}
	g.state = g.step(s)
	g.checkState()
}

// Params returns the parameters g runs with.
func (g *MinStd) Params() Params {
	return g.params
}

// State returns the value the next Uint32 call will return.
func (g *MinStd) State() uint32 {
	return uint32(g.state)
}

// step advances x by one serial step. For x in [1, m−1] the two folds
// leave a value in [1, m−1].
func (g *MinStd) step(x uint64) uint64 {
	v := g.params.Multiplier * x
	v = fold(v)
	v = fold(v)
	return v
}

// Uint32 returns the current state and advances one serial step.
func (g *MinStd) Uint32() uint32 {
	s := g.state
	g.state = g.step(s)
	return uint32(s)
}

// Float32 returns Uint32 scaled by Norm.
func (g *MinStd) Float32() float32 {
	return float32(g.Uint32()) * Norm
}

// Generate returns n floats from the batch path.
func (g *MinStd) Generate(n int) []float32 {
	out := make([]float32, n)
	g.Fill(out)
	return out
}

// Fill writes len(dst) floats and leaves the serial state where len(dst)
// calls to Float32 would have left it.
//
// Under the scalar dispatch level the serial path is used directly; both
// paths produce bit-identical output.
func (g *MinStd) Fill(dst []float32) {
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		g.fillSerial(dst)
		return
	}
	g.fillLanes(dst)
}

func (g *MinStd) fillSerial(dst []float32) {
	for i := range dst {
		dst[i] = g.Float32()
	}
}

func (g *MinStd) fillLanes(dst []float32) {
	var lstate [Lanes]uint64
	lstate[0] = g.state
	for i := 1; i < Lanes; i++ {
		lstate[i] = g.step(lstate[i-1])
	}

	fullIters := len(dst) / Lanes
	remIters := len(dst) % Lanes

	stateLo := hwy.LoadUint64x4Slice(lstate[:Lanes/2])
	stateHi := hwy.LoadUint64x4Slice(lstate[Lanes/2:])

	maskVec := hwy.BroadcastUint64x4(foldMask)
	skipVec := hwy.BroadcastUint64x4(g.params.Skip)
	normVec := hwy.BroadcastFloat32x8(Norm)

	for j := 0; j < fullIters; j++ {
		// Emit lanes j*8 .. j*8+7.
		fvec := hwy.NarrowUint64x4Pair(stateLo, stateHi).ConvertToFloat32().Mul(normVec)
		fvec.StoreSlice(dst[j*Lanes:])

		// Advance every lane by 8 serial steps.
		stateLo = skipVec.Mul(stateLo)
		stateHi = skipVec.Mul(stateHi)

		stateLo = stateLo.ShiftAllRight(foldShift).Add(stateLo.And(maskVec))
		stateHi = stateHi.ShiftAllRight(foldShift).Add(stateHi.And(maskVec))

		stateLo = stateLo.ShiftAllRight(foldShift).Add(stateLo.And(maskVec))
		stateHi = stateHi.ShiftAllRight(foldShift).Add(stateHi.And(maskVec))
	}

	// The loop leaves the lanes at position fullIters*8 without advancing
	// past it, so the tail reads them as-is and lane remIters is the
	// serial state after len(dst) draws. This also holds for remIters == 0.
	remVals := hwy.NarrowUint64x4Pair(stateLo, stateHi)
	base := fullIters * Lanes
	for i := 0; i < remIters; i++ {
		dst[base+i] = float32(remVals[i]) * Norm
	}

	g.state = uint64(remVals[remIters])
	g.checkState()
}

// checkState panics if the state left [1, m−1]. Reaching it means the
// multipliers or the reduction are broken, not that the caller erred.
func (g *MinStd) checkState() {
	if g.state == 0 || g.state >= Modulus {
		panic(fmt.Sprintf("rng: state %d outside [1, %d] (params %+v)", g.state, Modulus-1, g.params))
	}
}
