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

package montecarlo

import (
	"math/rand/v2"

	"github.com/ajroetker/hwypi/hwy"
	"github.com/ajroetker/hwypi/hwy/contrib/rng"
)

// groupFloats is one lane group: 8 x values then 8 y values.
const groupFloats = 2 * hwy.Float32x8Lanes

// naiveStream is the PCG increment selector for the naive kernel.
const naiveStream = 0x9E3779B97F4A7C15

// CountHits runs the kernel for mode on a fresh generator seeded with seed
// and returns how many of pairs points landed inside the quarter circle.
func CountHits(mode Mode, seed uint32, pairs, chunkPairs int) uint64 {
	if mode == ModeNaive {
		return CountHitsNaive(seed, pairs)
	}
	return CountHitsVectorized(rng.New(seed), pairs, chunkPairs)
}

// CountHitsVectorized draws pairs points from g in chunks of chunkPairs and
// counts the hits. The scratch buffer lives for the duration of the call.
//
// Under hwy.DispatchScalar the per-element kernel reads the same buffer,
// so the count does not depend on the dispatch level.
func CountHitsVectorized(g *rng.MinStd, pairs, chunkPairs int) uint64 {
	if pairs <= 0 {
		return 0
	}
	if chunkPairs <= 0 {
		chunkPairs = DefaultChunkPairs
	}
	chunkPairs = min(chunkPairs, pairs)

	count := countGroupsLanes
	if hwy.CurrentLevel() == hwy.DispatchScalar {
		count = countGroupsScalar
	}

	buf := make([]float32, 2*chunkPairs)
	var hits uint64
	for remaining := pairs; remaining > 0; {
		n := min(chunkPairs, remaining)
		chunk := buf[:2*n]
		g.Fill(chunk)

		full := len(chunk) / groupFloats * groupFloats
		hits += count(chunk[:full])
		hits += countPairs(chunk[full:])
		remaining -= n
	}
	return hits
}

// countGroupsLanes counts hits over whole 16-float groups with the lane types.
func countGroupsLanes(buf []float32) uint64 {
	one := hwy.BroadcastFloat32x8(1)
	var hits uint64
	for i := 0; i+groupFloats <= len(buf); i += groupFloats {
		x := hwy.LoadFloat32x8Slice(buf[i:])
		y := hwy.LoadFloat32x8Slice(buf[i+hwy.Float32x8Lanes:])

		sqr := x.Mul(x).Add(y.Mul(y))
		mask := sqr.LessEqual(one)
		hits += uint64(hwy.PopCount32(mask.ToBits()))
	}
	return hits
}

// countGroupsScalar is the per-element equivalent of countGroupsLanes.
func countGroupsScalar(buf []float32) uint64 {
	var hits uint64
	for i := 0; i+groupFloats <= len(buf); i += groupFloats {
		for k := range hwy.Float32x8Lanes {
			x := buf[i+k]
			y := buf[i+hwy.Float32x8Lanes+k]
			if inCircle(x, y) {
				hits++
			}
		}
	}
	return hits
}

// countPairs counts hits over interleaved (x, y) pairs.
func countPairs(buf []float32) uint64 {
	var hits uint64
	for i := 0; i+1 < len(buf); i += 2 {
		if inCircle(buf[i], buf[i+1]) {
			hits++
		}
	}
	return hits
}

func inCircle(x, y float32) bool {
	xx := float32(x * x)
	yy := float32(y * y)
	return xx+yy <= 1
}

// CountHitsNaive draws pairs points one float at a time from a PCG seeded
// with seed and counts the hits.
func CountHitsNaive(seed uint32, pairs int) uint64 {
	r := rand.New(rand.NewPCG(uint64(seed), naiveStream))
	var hits uint64
	for range pairs {
		x := r.Float32()
		y := r.Float32()
		if inCircle(x, y) {
			hits++
		}
	}
	return hits
}
