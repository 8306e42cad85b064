package montecarlo

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Seeds returns n seeds read from the OS entropy source.
func Seeds(n int) ([]uint32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreads, n)
	}
	buf := make([]byte, 4*n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("montecarlo: reading entropy: %w", err)
	}
	seeds := make([]uint32, n)
	for i := range seeds {
		seeds[i] = binary.LittleEndian.Uint32(buf[4*i:])
	}
	return seeds, nil
}
