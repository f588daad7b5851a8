package digest

import "strings"

const (
	MatchMessage   = "Hash matches! File integrity verified."
	NoMatchMessage = "No match found. The hash does not match any generated hash."
)

// Verdict is the outcome of comparing an expected digest against generated ones.
type Verdict struct {
	Checked   bool      `json:"checked"`
	Match     bool      `json:"match"`
	Algorithm Algorithm `json:"algorithm,omitempty"`
	Message   string    `json:"message,omitempty"`
}

// Verify compares expected (trimmed, case-insensitive) against each hash.
// An empty expected value yields an unchecked verdict.
func Verify(hashes []Hash, expected string) Verdict {
	want := strings.ToLower(strings.TrimSpace(expected))
	if want == "" {
		return Verdict{}
	}
	for _, h := range hashes {
		if h.Hex == want {
			return Verdict{Checked: true, Match: true, Algorithm: h.Algorithm, Message: MatchMessage}
		}
	}
	return Verdict{Checked: true, Message: NoMatchMessage}
}
