// pkg/token/token.go

// Package token decodes JSON Web Tokens for inspection. Signatures are
// never verified.
package token

import (
	"math"
	"strings"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidFormat = cerr.New("Invalid JWT format. Expected 3 parts separated by dots.")
	ErrMalformed     = cerr.New("malformed JWT")
)

// Status of a token's expiry claim.
type Status string

const (
	StatusValid   Status = "valid"
	StatusExpired Status = "expired"
	StatusNoExp   Status = "no-exp"
)

// Validity describes the exp claim relative to a reference time.
type Validity struct {
	Status        Status `json:"status"`
	DaysRemaining int    `json:"days_remaining,omitempty"`
}

// Decoded is a token split into its parts.
type Decoded struct {
	Header    map[string]any `json:"header"`
	Payload   map[string]any `json:"payload"`
	Signature string         `json:"signature"`
	Validity  Validity       `json:"validity"`
	IssuedAt  *time.Time     `json:"issued_at,omitempty"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	NotBefore *time.Time     `json:"not_before,omitempty"`
}

// Decode parses raw without verifying its signature and evaluates expiry
// against now.
func Decode(raw string, now time.Time) (*Decoded, error) {
	raw = strings.TrimSpace(raw)
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, cerr.WithDetailf(ErrInvalidFormat, "got %d parts", len(parts))
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	tok, _, err := parser.ParseUnverified(raw, claims)
	if err != nil {
		return nil, cerr.Mark(cerr.Wrap(err, "decode JWT"), ErrMalformed)
	}

	d := &Decoded{
		Header:    tok.Header,
		Payload:   claims,
		Signature: parts[2],
	}
	if d.ExpiresAt, err = claimTime(claims.GetExpirationTime); err != nil {
		return nil, err
	}
	if d.IssuedAt, err = claimTime(claims.GetIssuedAt); err != nil {
		return nil, err
	}
	if d.NotBefore, err = claimTime(claims.GetNotBefore); err != nil {
		return nil, err
	}
	d.Validity = validity(d.ExpiresAt, now)
	return d, nil
}

func claimTime(get func() (*jwt.NumericDate, error)) (*time.Time, error) {
	nd, err := get()
	if err != nil {
		return nil, cerr.Mark(cerr.Wrap(err, "decode JWT time claim"), ErrMalformed)
	}
	if nd == nil {
		return nil, nil
	}
	t := nd.Time
	return &t, nil
}

// validity compares whole seconds. A zero exp counts as absent.
func validity(exp *time.Time, now time.Time) Validity {
	if exp == nil || exp.Unix() == 0 {
		return Validity{Status: StatusNoExp}
	}
	nowSec, expSec := now.Unix(), exp.Unix()
	if nowSec > expSec {
		return Validity{Status: StatusExpired}
	}
	days := int(math.Ceil(float64(expSec-nowSec) / (60 * 60 * 24)))
	return Validity{Status: StatusValid, DaysRemaining: days}
}
