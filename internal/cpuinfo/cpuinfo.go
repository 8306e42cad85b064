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

// Package cpuinfo reports the CPU features Go detects and the kernels the
// estimator will dispatch to.
package cpuinfo

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/hwypi/hwy"
)

// Feature is one named CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Features returns the features relevant to the lane kernels for the
// running architecture. Other architectures return nil.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64":
		return []Feature{
			{"SSE2", cpu.X86.HasSSE2, "amd64 baseline"},
			{"SSE41", cpu.X86.HasSSE41, ""},
			{"AVX", cpu.X86.HasAVX, ""},
			{"AVX2", cpu.X86.HasAVX2, "Float32x8 in one register"},
			{"FMA", cpu.X86.HasFMA, ""},
			{"POPCNT", cpu.X86.HasPOPCNT, "mask population count"},
			{"AVX512F", cpu.X86.HasAVX512F, ""},
			{"AVX512VL", cpu.X86.HasAVX512VL, ""},
		}
	case "arm64":
		return []Feature{
			{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
			{"FP", cpu.ARM64.HasFP, "Floating point"},
			{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
			{"SVE2", cpu.ARM64.HasSVE2, ""},
			{"ATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
		}
	}
	return nil
}

// Report writes the platform, dispatch level and feature table to w.
func Report(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("GOOS: %s", runtime.GOOS),
		fmt.Sprintf("GOARCH: %s", runtime.GOARCH),
		fmt.Sprintf("NumCPU: %d", runtime.NumCPU()),
		fmt.Sprintf("GOMAXPROCS: %d", runtime.GOMAXPROCS(0)),
		"",
		fmt.Sprintf("Dispatch level: %s", hwy.CurrentLevel()),
		fmt.Sprintf("Dispatch width: %d bytes", hwy.CurrentWidth()),
		fmt.Sprintf("Scalar override (%s): %v", hwy.NoSimdEnvVar, hwy.NoSimdEnv()),
		"",
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	feats := Features()
	if len(feats) == 0 {
		_, err := fmt.Fprintf(w, "no feature table for %s\n", runtime.GOARCH)
		return err
	}
	if _, err := fmt.Fprintf(w, "=== golang.org/x/sys/cpu (%s) ===\n", runtime.GOARCH); err != nil {
		return err
	}
	for _, f := range feats {
		var err error
		if f.Note != "" {
			_, err = fmt.Fprintf(w, "  Has%-9s %v (%s)\n", f.Name+":", f.Present, f.Note)
		} else {
			_, err = fmt.Fprintf(w, "  Has%-9s %v\n", f.Name+":", f.Present)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
