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
	"math"
	"testing"

	"github.com/ajroetker/hwypi/hwy"
)

// serialStep is an independent reference: plain a·x mod m with a division.
func serialStep(x uint64) uint64 {
	return Multiplier * x % Modulus
}

func TestSkip8MatchesSkipAhead(t *testing.T) {
	if got := SkipAhead(Multiplier, 8); got != Skip8 {
		t.Errorf("SkipAhead(%d, 8) = %d, want %d", Multiplier, got, Skip8)
	}

	// Independent check by eight plain multiplications.
	want := uint64(1)
	for range 8 {
		want = want * Multiplier % Modulus
	}
	if Skip8 != want {
		t.Errorf("Skip8 = %d, want %d", Skip8, want)
	}
	if !DefaultParams().Consistent() {
		t.Error("DefaultParams() is not consistent")
	}
}

func TestSkipAhead(t *testing.T) {
	tests := []struct {
		a, k uint64
	}{
		{Multiplier, 0},
		{Multiplier, 1},
		{Multiplier, 2},
		{Multiplier, 16},
		{Multiplier, 1000},
		{16807, 8},
		{Modulus - 1, 3},
	}
	for _, tt := range tests {
		want := uint64(1)
		for range tt.k {
			want = want * tt.a % Modulus
		}
		if got := SkipAhead(tt.a, tt.k); got != want {
			t.Errorf("SkipAhead(%d, %d) = %d, want %d", tt.a, tt.k, got, want)
		}
	}
}

func TestFoldRange(t *testing.T) {
	xs := []uint64{1, 2, 3, 48271, 44488, 1 << 20, 1<<30 + 12345, Modulus - 2, Modulus - 1}
	for x := uint64(1); x < 5000; x++ {
		xs = append(xs, x, Modulus-x)
	}
	for _, x := range xs {
		v := Multiplier * x
		once := fold(v)
		if once >= 1<<32 {
			t.Fatalf("fold(a*%d) = %d, want < 2^32", x, once)
		}
		twice := fold(once)
		if twice == 0 || twice >= Modulus {
			t.Fatalf("fold(fold(a*%d)) = %d, want in [1, %d]", x, twice, Modulus-1)
		}
		if want := v % Modulus; twice != want {
			t.Fatalf("fold(fold(a*%d)) = %d, want %d", x, twice, want)
		}
	}
}

func TestSeedReduction(t *testing.T) {
	tests := []struct {
		seed uint32
		want uint64 // state after seeding
	}{
		{1, Multiplier},
		{0, Multiplier},                   // 0 maps to 1
		{uint32(Modulus), Multiplier},     // m ≡ 0 maps to 1
		{uint32(Modulus) + 1, Multiplier}, // m+1 ≡ 1
		{2, 2 * Multiplier},
		{math.MaxUint32, serialStep(math.MaxUint32 % Modulus)},
	}
	for _, tt := range tests {
		g := New(tt.seed)
		if got := uint64(g.State()); got != tt.want {
			t.Errorf("New(%d).State() = %d, want %d", tt.seed, got, tt.want)
		}
	}
}

func TestUint32KnownSequence(t *testing.T) {
	g := New(DefaultSeed)
	want := []uint32{48271, 182605794, 1291394886, 1914720637, 2078669041}
	for i, w := range want {
		if got := g.Uint32(); got != w {
			t.Errorf("Uint32 #%d = %d, want %d", i, got, w)
		}
	}
}

// Published check value: the 10000th output of MINSTD (a = 48271) seeded
// with 1 is 399268537.
func TestUint32TenThousandth(t *testing.T) {
	g := New(DefaultSeed)
	var v uint32
	for range 10000 {
		v = g.Uint32()
	}
	if v != 399268537 {
		t.Errorf("10000th Uint32 = %d, want 399268537", v)
	}
}

func TestFillMatchesSerial(t *testing.T) {
	seeds := []uint32{1, 7, 11, 22, 33, 44, 12345, 0xDEADBEEF, math.MaxUint32}
	counts := []int{0, 1, 7, 8, 9, 11, 15, 16, 17, 63, 64, 100, 1000}
	for _, seed := range seeds {
		for _, n := range counts {
			t.Run(fmt.Sprintf("seed=%d/n=%d", seed, n), func(t *testing.T) {
				batch := New(seed)
				serial := New(seed)

				got := batch.Generate(n)
				if len(got) != n {
					t.Fatalf("len(Generate(%d)) = %d", n, len(got))
				}
				for i := range got {
					if want := serial.Float32(); got[i] != want {
						t.Fatalf("index %d: Fill = %v, Float32 = %v", i, got[i], want)
					}
				}
				if batch.State() != serial.State() {
					t.Errorf("state after Fill = %d, after serial = %d", batch.State(), serial.State())
				}
			})
		}
	}
}

func TestFillStateAfterSixteen(t *testing.T) {
	g := New(1)
	g.Fill(make([]float32, 16))

	want := Multiplier // mod(1)
	for range 16 {
		want = serialStep(want)
	}
	if got := uint64(g.State()); got != want {
		t.Errorf("State() after Fill(16) = %d, want %d", got, want)
	}
	if want != 1882556969 {
		t.Errorf("reference state = %d, want 1882556969", want)
	}
}

func TestFillRemainder(t *testing.T) {
	g := New(42)
	start := uint64(g.State())

	out := g.Generate(11)
	if len(out) != 11 {
		t.Fatalf("len = %d, want 11", len(out))
	}
	for i, v := range out {
		if v <= 0 || v >= 1 {
			t.Errorf("out[%d] = %v, want in (0, 1)", i, v)
		}
	}

	want := start
	for range 11 {
		want = serialStep(want)
	}
	if got := uint64(g.State()); got != want {
		t.Errorf("State() after Fill(11) = %d, want %d", got, want)
	}
}

// Exact multiples of the lane count must not advance the state past the
// draws they emitted.
func TestFillLaneMultipleNoDoubleAdvance(t *testing.T) {
	for _, n := range []int{8, 16, 24, 80, 20000} {
		g := New(99)
		want := uint64(g.State())
		for range n {
			want = serialStep(want)
		}
		g.Fill(make([]float32, n))
		if got := uint64(g.State()); got != want {
			t.Errorf("n=%d: State() = %d, want %d", n, got, want)
		}
	}
}

func TestInterleavedCalls(t *testing.T) {
	mixed := New(2024)
	ref := New(2024)

	check := func(label string, got float32) {
		t.Helper()
		if want := ref.Float32(); got != want {
			t.Fatalf("%s: got %v, want %v", label, got, want)
		}
	}

	for round, n := range []int{3, 8, 0, 13, 1, 16, 5} {
		for i, v := range mixed.Generate(n) {
			check(fmt.Sprintf("round %d batch[%d]", round, i), v)
		}
		check(fmt.Sprintf("round %d single", round), mixed.Float32())
	}
}

func TestFillScalarDispatch(t *testing.T) {
	lanes := New(77).Generate(101)

	restore := hwy.SetDispatchLevel(hwy.DispatchScalar)
	defer restore()

	g := New(77)
	scalar := g.Generate(101)
	for i := range lanes {
		if lanes[i] != scalar[i] {
			t.Fatalf("index %d: lanes %v, scalar %v", i, lanes[i], scalar[i])
		}
	}
}

func TestInconsistentSkipDesyncs(t *testing.T) {
	p := Params{Multiplier: Multiplier, Skip: Skip8 + 1}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if p.Consistent() {
		t.Fatal("Consistent() = true for a wrong skip")
	}

	bad := NewWithParams(5, p)
	good := New(5)
	b := bad.Generate(16)
	g := good.Generate(16)

	// The first round comes from serial seeding and still agrees.
	for i := range Lanes {
		if b[i] != g[i] {
			t.Errorf("index %d differs before the first skip", i)
		}
	}
	same := 0
	for i := Lanes; i < 16; i++ {
		if b[i] == g[i] {
			same++
		}
	}
	if same == Lanes {
		t.Error("second round unaffected by wrong skip")
	}
}

func TestNewParams(t *testing.T) {
	p := NewParams(16807)
	if !p.Consistent() {
		t.Errorf("NewParams(16807) = %+v, not consistent", p)
	}
	batch := NewWithParams(3, p)
	serial := NewWithParams(3, p)
	for i, v := range batch.Generate(37) {
		if want := serial.Float32(); v != want {
			t.Fatalf("index %d: %v != %v", i, v, want)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		ok   bool
	}{
		{"default", DefaultParams(), true},
		{"multiplier zero", Params{Multiplier: 0, Skip: 1}, false},
		{"multiplier one", Params{Multiplier: 1, Skip: 1}, false},
		{"multiplier modulus", Params{Multiplier: Modulus, Skip: 1}, false},
		{"skip zero", Params{Multiplier: Multiplier, Skip: 0}, false},
		{"skip modulus", Params{Multiplier: Multiplier, Skip: Modulus}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestNewWithParamsPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewWithParams with multiplier 0 did not panic")
		}
	}()
	NewWithParams(1, Params{})
}

func TestMinMaxNorm(t *testing.T) {
	if Min() != 1 || Max() != uint32(Modulus-1) {
		t.Errorf("Min/Max = %d/%d", Min(), Max())
	}
	if Norm != float32(math.Ldexp(1, -31)) {
		t.Errorf("Norm = %g, want 2^-31", Norm)
	}
	if got := float32(Min()) * Norm; got <= 0 {
		t.Errorf("smallest output %v, want > 0", got)
	}
}

func BenchmarkFill(b *testing.B) {
	g := New(1)
	buf := make([]float32, 20000)
	b.SetBytes(int64(len(buf) * 4))
	for b.Loop() {
		g.Fill(buf)
	}
}

func BenchmarkFloat32(b *testing.B) {
	g := New(1)
	buf := make([]float32, 20000)
	b.SetBytes(int64(len(buf) * 4))
	for b.Loop() {
		for i := range buf {
			buf[i] = g.Float32()
		}
	}
}
