package montecarlo

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the per-worker kernel.
type Mode int

const (
	// ModeVectorized uses rng.MinStd batches and the 8-lane kernel.
	ModeVectorized Mode = iota
	// ModeNaive uses a serial math/rand/v2 generator and scalar compares.
	ModeNaive
)

// String returns the literal ParseMode accepts.
func (m Mode) String() string {
	switch m {
	case ModeVectorized:
		return "vectorized"
	case ModeNaive:
		return "naive"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Configuration errors. Run and Validate wrap them with the offending value.
var (
	ErrInvalidThreads = errors.New("thread count must be a positive integer")
	ErrInvalidSamples = errors.New("samples per thread must be positive")
	ErrInvalidChunk   = errors.New("chunk size must be positive")
	ErrUnknownMode    = errors.New("unknown mode")
	ErrSeedCount      = errors.New("seed count must match thread count")
)

// ParseMode accepts "naive" and "vectorized" (case-insensitive, trimmed).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vectorized":
		return ModeVectorized, nil
	case "naive":
		return ModeNaive, nil
	default:
		return 0, fmt.Errorf("%w %q: want \"naive\" or \"vectorized\"", ErrUnknownMode, s)
	}
}

// Defaults for DefaultConfig.
const (
	DefaultThreads          = 8
	DefaultSamplesPerThread = 1_000_000_000
	DefaultChunkPairs       = 10_000
)

// Config describes one estimation run.
type Config struct {
	// Threads is the number of workers, one goroutine each.
	Threads int
	// Mode selects the kernel every worker runs.
	Mode Mode
	// SamplesPerThread is the number of (x, y) pairs each worker draws.
	SamplesPerThread int
	// ChunkPairs is the number of pairs generated per scratch refill in
	// vectorized mode.
	ChunkPairs int
	// Seeds holds one seed per worker. When empty, Run draws them from the
	// OS entropy source.
	Seeds []uint32
}

// DefaultConfig returns 8 vectorized workers of 10^9 samples each.
func DefaultConfig() Config {
	return Config{
		Threads:          DefaultThreads,
		Mode:             ModeVectorized,
		SamplesPerThread: DefaultSamplesPerThread,
		ChunkPairs:       DefaultChunkPairs,
	}
}

// Validate reports the first configuration error found.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, c.Threads)
	}
	if c.SamplesPerThread < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, c.SamplesPerThread)
	}
	if c.ChunkPairs < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidChunk, c.ChunkPairs)
	}
	if c.Mode != ModeVectorized && c.Mode != ModeNaive {
		return fmt.Errorf("%w %v", ErrUnknownMode, c.Mode)
	}
	if len(c.Seeds) != 0 && len(c.Seeds) != c.Threads {
		return fmt.Errorf("%w: %d seeds for %d threads", ErrSeedCount, len(c.Seeds), c.Threads)
	}
	return nil
}
