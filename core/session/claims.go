package session

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Claims are the authorization claims the backend embeds in the access
// token: the standard set plus the user's role.
type Claims struct {
	jwt.StandardClaims
	Role string `json:"role,omitempty"`
}

// DecodeClaims decodes the token claims WITHOUT verifying the signature.
// The token stays trusted-until-rejected; decoded claims are for display
// (whoami, expiry hints) only and never feed an authorization decision.
func DecodeClaims(token string) (*Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "decoding token claims")
	}
	return claims, nil
}
