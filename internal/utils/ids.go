package utils

import (
	"crypto/rand"
	"fmt"
)

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewRefID generates a short human-readable reference with a prefix
// (used for sale transactions and hazard tickets).
// Format: "PREFIX-XXXXXXXXX" (e.g., "TX-4K9PL2QZB").
func NewRefID(prefix string) (string, error) {
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = refAlphabet[int(b[i])%len(refAlphabet)]
	}
	return fmt.Sprintf("%s-%s", prefix, string(b)), nil
}
