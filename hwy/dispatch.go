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

import (
	"os"
	"strconv"
)

// DispatchLevel identifies the instruction set the lane kernels were
// selected for at process start.
type DispatchLevel int

const (
	// DispatchScalar runs every lane operation as a plain per-element loop.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the amd64 baseline (128-bit).
	DispatchSSE2
	// DispatchAVX2 has 256-bit registers, one Float32x8 per register.
	DispatchAVX2
	// DispatchAVX512 has 512-bit registers.
	DispatchAVX512
	// DispatchNEON is the arm64 baseline (128-bit).
	DispatchNEON
)

// String returns the lower-case name used in logs and diagnostics.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown(" + strconv.Itoa(int(d)) + ")"
	}
}

// NoSimdEnvVar disables lane kernels when set to a true value.
const NoSimdEnvVar = "HWY_NO_SIMD"

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level detected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the native vector width in bytes.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the detected dispatch level.
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether HWY_NO_SIMD asks for the scalar fallback.
// Any value strconv.ParseBool accepts as true counts, as does a bare "1".
func NoSimdEnv() bool {
	v, ok := os.LookupEnv(NoSimdEnvVar)
	if !ok || v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// Unparseable but non-empty: treat as set.
		return true
	}
	return b
}

// SetDispatchLevel overrides the detected level and returns a function that
// restores the previous one. Intended for tests and benchmarks comparing the
// lane kernels against the scalar fallback.
func SetDispatchLevel(level DispatchLevel) (restore func()) {
	prevLevel, prevWidth, prevName := currentLevel, currentWidth, currentName
	currentLevel = level
	currentName = level.String()
	switch level {
	case DispatchAVX2:
		currentWidth = 32
	case DispatchAVX512:
		currentWidth = 64
	default:
		currentWidth = 16
	}
	return func() {
		currentLevel, currentWidth, currentName = prevLevel, prevWidth, prevName
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
