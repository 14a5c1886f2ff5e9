package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewRefreshToken returns a hex-encoded opaque token carrying nBytes of
// entropy. The caller picks the size; a non-positive size is an error, not
// a silent default.
func NewRefreshToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", nBytes)
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
