package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewLoanNumber returns a human-readable loan code like "LN-2026-3FA2C1".
// Uniqueness is ultimately enforced by the storage layer.
func NewLoanNumber(year int) string {
	b := make([]byte, 3)
	_, _ = rand.Read(b)
	return fmt.Sprintf("LN-%d-%s", year, strings.ToUpper(hex.EncodeToString(b)))
}
