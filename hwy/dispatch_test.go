package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(42), "unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestCurrentLevelConsistent(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
}

func TestSetDispatchLevel(t *testing.T) {
	before := CurrentLevel()
	restore := SetDispatchLevel(DispatchScalar)
	if CurrentLevel() != DispatchScalar || CurrentName() != "scalar" {
		t.Errorf("after override: level=%v name=%q", CurrentLevel(), CurrentName())
	}
	restore()
	if CurrentLevel() != before {
		t.Errorf("after restore: level=%v, want %v", CurrentLevel(), before)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(NoSimdEnvVar, tt.value)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.value, got, tt.want)
		}
	}
}
