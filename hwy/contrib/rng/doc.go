// Package rng provides MinStd, a MINSTD (Park–Miller, a = 48271) Lehmer
// generator with a batch path that advances eight sub-streams in lockstep.
//
// # Algorithm
//
// The serial recurrence is s ← a·s mod m with m = 2^31 − 1. Because m is a
// Mersenne number, a·s mod m is computed with two rounds of the fold
// (v >> 31) + (v & (2^31 − 1)) instead of a division.
//
// The batch path seeds eight lanes with s, f(s), …, f⁷(s) and then advances
// every lane by a⁸ mod m per round, so lane i always holds the value the
// serial generator would produce at position 8·round + i:
//  1. Narrow the eight 64-bit lane states to uint32
//  2. Convert to float32 and scale by 1/(m − 1)
//  3. Store eight floats and advance both 4-lane halves by a⁸
//  4. Serve the tail from the final, unadvanced lanes and resync the serial state
//
// Uint32/Float32 and Fill share one state field and leave it where a pure
// serial walk would be, so the two entry points can be interleaved freely.
//
// # Example Usage
//
//	g := rng.New(seed)
//	buf := make([]float32, 20000)
//	g.Fill(buf)        // 20000 floats, see Norm for the range
//	x := g.Float32()   // continues the same stream
//
// MinStd is not safe for concurrent use; give each goroutine its own.
package rng
