package session

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, claims *Claims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("signedToken() failed: %v", err)
	}
	return ss
}

func TestDecodeClaims(t *testing.T) {
	now := time.Now()
	want := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "1",
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Hour).Unix(),
		},
		Role: RoleGuru,
	}

	claims, err := DecodeClaims(signedToken(t, want))
	if err != nil {
		t.Fatalf("DecodeClaims() failed: %v", err)
	}
	if claims.Subject != want.Subject {
		t.Errorf("Subject = %q, want %q", claims.Subject, want.Subject)
	}
	if claims.Role != want.Role {
		t.Errorf("Role = %q, want %q", claims.Role, want.Role)
	}
	if claims.ExpiresAt != want.ExpiresAt {
		t.Errorf("ExpiresAt = %d, want %d", claims.ExpiresAt, want.ExpiresAt)
	}
}

func TestDecodeClaims_invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "lol"},
		{name: "bad payload", token: "a.b.c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeClaims(tt.token); err == nil {
				t.Error("DecodeClaims() expected error, got nil")
			}
		})
	}
}
