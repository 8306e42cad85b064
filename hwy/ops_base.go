package hwy

import "math/bits"

// This file holds the cross-type lane operations: narrowing, mask
// extraction and population count. They are written as straight-line Go
// so the compiler keeps the arrays in registers; the AVX2 equivalents are
// noted next to each function.

// NarrowUint64x4Pair keeps the low 32 bits of every 64-bit lane and
// concatenates them in lane order: lanes 0..3 come from lo, 4..7 from hi.
//
// AVX2: VPERMD with index {0,2,4,6} on each half, then VINSERTI128.
func NarrowUint64x4Pair(lo, hi Uint64x4) Uint32x8 {
	return Uint32x8{
		uint32(lo[0]), uint32(lo[1]), uint32(lo[2]), uint32(lo[3]),
		uint32(hi[0]), uint32(hi[1]), uint32(hi[2]), uint32(hi[3]),
	}
}

// PopCount32 returns the number of set bits in v.
//
// AVX2 hosts: POPCNT.
func PopCount32(v uint32) int {
	return bits.OnesCount32(v)
}

// ToBits returns the packed lane mask, bit i for lane i.
//
// AVX2: VMOVMSKPS.
func (m Mask32x8) ToBits() uint32 {
	return uint32(m)
}

// CountTrue returns the number of lanes that compared true.
func (m Mask32x8) CountTrue() int {
	return PopCount32(uint32(m))
}

// AllTrue reports whether every lane compared true.
func (m Mask32x8) AllTrue() bool {
	return m == 0xFF
}

// AnyTrue reports whether at least one lane compared true.
func (m Mask32x8) AnyTrue() bool {
	return m != 0
}

// GetLane reports whether lane i compared true.
func (m Mask32x8) GetLane(lane int) bool {
	return m&(1<<lane) != 0
}
