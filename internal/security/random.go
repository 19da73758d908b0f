package security

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomDigits returns n uniformly distributed decimal digits.
func RandomDigits(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("random digits: length must be positive, got %d", n)
	}
	buf := make([]byte, n)
	ten := big.NewInt(10)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("random digits: %w", err)
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
