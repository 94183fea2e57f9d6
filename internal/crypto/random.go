package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	ErrInvalidBound      = errors.New("random index bound must be positive")
	ErrRandomUnavailable = errors.New("secure random source unavailable")
)

// RandomIndex returns a uniformly distributed integer in [0, bound) drawn
// from the platform CSPRNG. It draws an unsigned 32-bit value and reduces
// modulo bound; for the small bounds used here (charset sizes well under
// 100) the modulo bias is negligible.
//
// There is no fallback to a non-cryptographic source: if the CSPRNG read
// fails the error is ErrRandomUnavailable and generation must abort.
func RandomIndex(bound int) (int, error) {
	if bound <= 0 {
		return 0, ErrInvalidBound
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}

	return int(binary.BigEndian.Uint32(buf[:]) % uint32(bound)), nil
}
