// pkg/crypto/password.go

package crypto

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
)

const (
	UppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
	NumberAlphabet    = "0123456789"
	SymbolAlphabet    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// SimilarChars look alike in many fonts.
	SimilarChars = "il1Lo0O"
	// AmbiguousChars are brackets, quotes and punctuation that break shells and configs.
	AmbiguousChars = "{}[]()/\\'\"`,;:.<>"
)

// MaxPasswordLength bounds a single generated password.
const MaxPasswordLength = 1024

// ErrInvalidLength is returned for a length outside 1..MaxPasswordLength.
var ErrInvalidLength = cerr.New("password length out of range")

// PasswordOptions selects character classes and exclusions.
type PasswordOptions struct {
	Length           int  `mapstructure:"length" json:"length" validate:"min=1,max=1024"`
	Uppercase        bool `mapstructure:"uppercase" json:"uppercase"`
	Lowercase        bool `mapstructure:"lowercase" json:"lowercase"`
	Numbers          bool `mapstructure:"numbers" json:"numbers"`
	Symbols          bool `mapstructure:"symbols" json:"symbols"`
	ExcludeSimilar   bool `mapstructure:"exclude_similar" json:"exclude_similar"`
	ExcludeAmbiguous bool `mapstructure:"exclude_ambiguous" json:"exclude_ambiguous"`
}

// DefaultPasswordOptions is 16 characters from all four classes.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{Length: 16, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

// AnyClass reports whether at least one class is selected.
func (o PasswordOptions) AnyClass() bool {
	return o.Uppercase || o.Lowercase || o.Numbers || o.Symbols
}

// charClass is one selectable alphabet. Enforcement walks classes in this order.
type charClass struct {
	alphabet string
	enabled  func(PasswordOptions) bool
}

var charClasses = []charClass{
	{UppercaseAlphabet, func(o PasswordOptions) bool { return o.Uppercase }},
	{LowercaseAlphabet, func(o PasswordOptions) bool { return o.Lowercase }},
	{NumberAlphabet, func(o PasswordOptions) bool { return o.Numbers }},
	{SymbolAlphabet, func(o PasswordOptions) bool { return o.Symbols }},
}

// filter drops excluded characters from alphabet.
func (o PasswordOptions) filter(alphabet string) string {
	return strings.Map(func(r rune) rune {
		if o.ExcludeSimilar && strings.ContainsRune(SimilarChars, r) {
			return -1
		}
		if o.ExcludeAmbiguous && strings.ContainsRune(AmbiguousChars, r) {
			return -1
		}
		return r
	}, alphabet)
}

// Charset is the effective character set: every enabled alphabet
// concatenated, minus exclusions.
func (o PasswordOptions) Charset() string {
	var b strings.Builder
	for _, c := range charClasses {
		if c.enabled(o) {
			b.WriteString(c.alphabet)
		}
	}
	return o.filter(b.String())
}

// GeneratePassword draws a password from the system CSPRNG.
// ok is false when no class is selected or exclusions empty the charset.
func GeneratePassword(opts PasswordOptions) (password string, ok bool, err error) {
	return NewGenerator(CryptoSource{}).Generate(opts)
}

// Generator builds passwords from a Source.
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate fills length slots from the effective charset, makes sure every
// selected class with a non-empty filtered alphabet is represented, then
// shuffles. The same Source stream always produces the same password.
func (g *Generator) Generate(opts PasswordOptions) (string, bool, error) {
	if opts.Length < 1 || opts.Length > MaxPasswordLength {
		return "", false, cerr.WithHintf(cerr.Wrapf(ErrInvalidLength, "got %d", opts.Length),
			"Choose a length between 1 and %d", MaxPasswordLength)
	}
	if !opts.AnyClass() {
		return "", false, nil
	}
	charset := opts.Charset()
	if charset == "" {
		return "", false, nil
	}

	pass := make([]byte, opts.Length)
	defer SecureZero(pass)

	for i := range pass {
		idx, err := PickUniform(g.src, len(charset))
		if err != nil {
			return "", false, cerr.Wrap(err, "fill password")
		}
		pass[i] = charset[idx]
	}

	if err := g.enforce(pass, opts); err != nil {
		return "", false, err
	}
	if err := Shuffle(g.src, pass); err != nil {
		return "", false, err
	}
	return string(pass), true, nil
}

// enforce overwrites leading slots, in class order, for each selected class
// missing from pass. A slot is skipped when it holds the only occurrence of
// some class, so an earlier guarantee is never undone. Enforcement stops when
// no replaceable slot remains.
func (g *Generator) enforce(pass []byte, opts PasswordOptions) error {
	next := 0
	for _, c := range charClasses {
		if !c.enabled(opts) || containsAny(pass, c.alphabet) {
			continue
		}
		alphabet := opts.filter(c.alphabet)
		if alphabet == "" {
			continue
		}

		for next < len(pass) && soleOfClass(pass, next) {
			next++
		}
		if next >= len(pass) {
			return nil
		}

		idx, err := PickUniform(g.src, len(alphabet))
		if err != nil {
			return cerr.Wrap(err, "enforce character classes")
		}
		pass[next] = alphabet[idx]
		next++
	}
	return nil
}

func containsAny(pass []byte, alphabet string) bool {
	for _, b := range pass {
		if strings.IndexByte(alphabet, b) >= 0 {
			return true
		}
	}
	return false
}

// soleOfClass reports whether pass[i] is the only character of its class.
func soleOfClass(pass []byte, i int) bool {
	for _, c := range charClasses {
		if strings.IndexByte(c.alphabet, pass[i]) < 0 {
			continue
		}
		for j, b := range pass {
			if j != i && strings.IndexByte(c.alphabet, b) >= 0 {
				return false
			}
		}
		return true
	}
	return false
}
