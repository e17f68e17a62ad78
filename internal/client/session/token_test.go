package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestParseExpiry_ReturnsEmbeddedExpiry(t *testing.T) {
	expiry := time.Now().Add(1 * time.Hour).Truncate(time.Second)
	token := makeToken(t, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
		Subject:   "user-1",
	})

	got, err := ParseExpiry(token)
	require.NoError(t, err)
	require.True(t, got.Equal(expiry))
}

func TestParseExpiry_MalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "aaaa.bbbb"},
		{"bad base64", "aa!a.bb!b.cc!c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExpiry(tc.token)
			require.ErrorIs(t, err, ErrMalformedCredential)
		})
	}
}

func TestParseExpiry_MissingExpiryClaim(t *testing.T) {
	token := makeToken(t, jwt.RegisteredClaims{Subject: "user-1"})

	_, err := ParseExpiry(token)
	require.ErrorIs(t, err, ErrMalformedCredential)
}
