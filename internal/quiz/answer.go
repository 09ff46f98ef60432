package quiz

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// PassThreshold is the score fraction required for a certificate.
const PassThreshold = 0.8

// Normalize folds an answer for digesting: trim surrounding whitespace, then
// lowercase. The generated script applies the identical transform before its
// own hash comparison, so any change here must ship in the template too.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// HashAnswer returns the lowercase hex SHA-256 digest of the normalized
// answer.
func HashAnswer(s string) string {
	sum := sha256.Sum256([]byte(Normalize(s)))
	return hex.EncodeToString(sum[:])
}

// Passed reports whether a score clears the certificate threshold.
func Passed(score, total int) bool {
	return total > 0 && float64(score)/float64(total) >= PassThreshold
}
