package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedCredential means the server-issued token cannot be decoded or
// carries no usable expiry. A session must never be persisted from such a
// token; callers treat it as "login did not succeed".
var ErrMalformedCredential = errors.New("malformed credential")

// ParseExpiry extracts the expiry claim embedded in the token. The signature
// is not verified: the client never holds the signing key, and the expiry is
// only used to schedule local logout. The server remains the authority on
// whether the token is actually accepted.
//
// Returns ErrMalformedCredential if the token does not decode or the expiry
// claim is missing.
func ParseExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing expiry claim", ErrMalformedCredential)
	}
	return claims.ExpiresAt.Time, nil
}
