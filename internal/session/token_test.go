package session

import (
	"context"
	"testing"
	"time"

	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

func mintToken(t *testing.T, secret string, role enums.Role, expiresIn time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestParseTokenRoundTrip(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret"}
	token := mintToken(t, "secret", enums.RoleSeller, time.Hour)

	claims, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Username() != "alice" {
		t.Fatalf("unexpected subject %q", claims.Username())
	}
	if claims.Role != enums.RoleSeller {
		t.Fatalf("unexpected role %q", claims.Role)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret"}
	token := mintToken(t, "secret", enums.RoleBuyer, -time.Minute)

	if _, err := ParseToken(cfg, token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret"}
	token := mintToken(t, "other", enums.RoleBuyer, time.Hour)

	if _, err := ParseToken(cfg, token); err == nil {
		t.Fatal("expected token signed with wrong secret to fail")
	}
}

func TestTokenContextRoundTrip(t *testing.T) {
	ctx := WithToken(context.Background(), "raw-token")
	if got := TokenFromContext(ctx); got != "raw-token" {
		t.Fatalf("unexpected token %q", got)
	}
	if got := TokenFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}
