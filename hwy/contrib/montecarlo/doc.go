// Package montecarlo estimates π by sampling points in the unit square and
// counting those inside the quarter circle.
//
// # Kernels
//
// Two interchangeable kernels count hits for one worker:
//   - CountHitsVectorized draws from an rng.MinStd in batches and compares
//     eight points per step with hwy.Float32x8
//   - CountHitsNaive draws one float at a time from a math/rand/v2 PCG and
//     compares one point per step
//
// Both are deterministic for a given seed. They do not produce the same
// counts since the generators differ, but both converge to π/4 per sample.
//
// # Buffer Layout
//
// The vectorized kernel fills a scratch buffer of 2·ChunkPairs floats per
// chunk. Each 16-float group holds 8 x values followed by 8 y values. A
// chunk that does not end on a group boundary reads its last floats as
// interleaved (x, y) pairs.
//
// # Parallel Driver
//
// Run starts one goroutine per configured thread. Every worker owns its
// generator and scratch buffer and writes only its own slot of the hit
// array; the join is the only synchronization point. The estimate is
//
//	π̂ = 4 · Σ hits / (threads · samples per thread)
//
// # Example Usage
//
//	cfg := montecarlo.DefaultConfig()
//	cfg.Threads = 4
//	cfg.SamplesPerThread = 10_000_000
//	res, err := montecarlo.Run(cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Pi)
package montecarlo
