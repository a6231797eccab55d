package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// RandomHexSuffix returns n upper-case hex characters read from crypto/rand.
// Document UIDs without a number use it as their uniqueness part.
func RandomHexSuffix(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("length must be positive")
	}
	b := make([]byte, (n+1)/2)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(b))[:n], nil
}
