// pkg/crypto/redact.go

package crypto

import "strings"

// Redact masks a secret for logs, keeping only its length.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", len([]rune(s)))
}

// SecureZero overwrites b so secrets do not linger in reused memory.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
