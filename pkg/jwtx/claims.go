package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an identity token, thirty days from
// issuance.
const DefaultTokenTTL = 30 * 24 * time.Hour

// Claims are the identity-token claims. Username and UserID are the only
// custom fields; changes here should stay additive so tokens already in the
// wild keep verifying.
type Claims struct {
	jwt.RegisteredClaims

	// Username as it was at issuance.
	Username string `json:"username"`

	// UserID is the stable id of the user the token was issued to.
	UserID string `json:"user_id"`
}

// NewIdentityClaims builds minimally-correct claims for a signed-in user.
func NewIdentityClaims(userID, username string, ttl time.Duration, now time.Time) Claims {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		UserID:   userID,
	}
}

// HasIdentity reports whether both identity fields are present.
func (c *Claims) HasIdentity() bool {
	return c.UserID != "" && c.Username != ""
}
