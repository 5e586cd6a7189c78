package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenIdentity is what the client can read from an identity token without
// verifying it. Verification belongs to the backend; this exists only to
// prefill the login display for token-mode sign-in.
type TokenIdentity struct {
	Subject string
	Email   string
}

type idTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// PeekToken reads unverified claims from a raw JWT. It returns false for
// anything that does not parse as a JWT at all.
func PeekToken(raw string) (TokenIdentity, bool) {
	var claims idTokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return TokenIdentity{}, false
	}
	return TokenIdentity{Subject: claims.Subject, Email: claims.Email}, true
}
