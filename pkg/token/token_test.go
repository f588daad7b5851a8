package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestDecode(t *testing.T) {
	t.Parallel()
	raw := sign(t, jwt.MapClaims{
		"sub": "1234567890",
		"iat": now.Add(-time.Hour).Unix(),
		"exp": now.Add(36 * time.Hour).Unix(),
	})

	d, err := Decode("  "+raw+"\n", now)
	require.NoError(t, err)

	assert.Equal(t, "HS256", d.Header["alg"])
	assert.Equal(t, "JWT", d.Header["typ"])
	assert.Equal(t, "1234567890", d.Payload["sub"])
	assert.NotEmpty(t, d.Signature)
	assert.Equal(t, Validity{Status: StatusValid, DaysRemaining: 2}, d.Validity)
	require.NotNil(t, d.IssuedAt)
	assert.Equal(t, now.Add(-time.Hour).Unix(), d.IssuedAt.Unix())
	assert.Nil(t, d.NotBefore)
}

func TestDecodeValidity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   Validity
	}{
		{"no exp", jwt.MapClaims{"sub": "x"}, Validity{Status: StatusNoExp}},
		{"zero exp", jwt.MapClaims{"exp": 0}, Validity{Status: StatusNoExp}},
		{"expired", jwt.MapClaims{"exp": now.Add(-time.Second).Unix()}, Validity{Status: StatusExpired}},
		{"expires now", jwt.MapClaims{"exp": now.Unix()}, Validity{Status: StatusValid}},
		{"exactly one day", jwt.MapClaims{"exp": now.Add(24 * time.Hour).Unix()}, Validity{Status: StatusValid, DaysRemaining: 1}},
		{"one second past a day", jwt.MapClaims{"exp": now.Add(24*time.Hour + time.Second).Unix()}, Validity{Status: StatusValid, DaysRemaining: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Decode(sign(t, tt.claims), now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Validity)
		})
	}
}

func TestDecodeUnsignedToken(t *testing.T) {
	t.Parallel()
	enc := func(v any) string {
		b, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(b)
	}
	raw := enc(map[string]string{"alg": "none"}) + "." + enc(map[string]any{"name": "demo"}) + "."

	d, err := Decode(raw, now)
	require.NoError(t, err)
	assert.Equal(t, "demo", d.Payload["name"])
	assert.Empty(t, d.Signature)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "abc", "a.b", "a.b.c.d"} {
		_, err := Decode(raw, now)
		require.Error(t, err, raw)
		assert.True(t, cerr.Is(err, ErrInvalidFormat), raw)
		assert.Equal(t, "Invalid JWT format. Expected 3 parts separated by dots.", err.Error())
	}

	_, err := Decode("!!!.???.sig", now)
	require.Error(t, err)
	assert.True(t, cerr.Is(err, ErrMalformed))
}
