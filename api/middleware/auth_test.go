package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ZOMBIEx-z/ClothingStore/internal/session"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/config"
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
)

func mintTestToken(t *testing.T, cfg config.JWTConfig, username string, role enums.Role) string {
	t.Helper()
	claims := session.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "clothingstore"}
	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "clothingstore"}
	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthSeedsContextAndKeepsRawToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "clothingstore"}
	token := mintTestToken(t, cfg, "alice", enums.RoleSeller)

	var captured struct {
		user  string
		role  string
		token string
	}
	handler := Auth(cfg, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.user = UsernameFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		captured.token = session.TokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.user != "alice" || captured.role != string(enums.RoleSeller) {
		t.Fatalf("claims not seeded: %+v", captured)
	}
	if captured.token != token {
		t.Fatal("raw token was not kept for upstream forwarding")
	}
}

func TestRequireRoleBlocksWrongRole(t *testing.T) {
	handler := RequireRole(enums.RoleSeller, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUsername(req.Context(), "alice"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestDeviceGeneratesAndEchoesID(t *testing.T) {
	var seen string
	handler := Device(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = DeviceIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if seen == "" {
		t.Fatal("expected a generated device id")
	}
	if got := resp.Header().Get(deviceIDHeader); got != seen {
		t.Fatalf("device id not echoed back: %q vs %q", got, seen)
	}

	// a provided id is kept as-is
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deviceIDHeader, "device-a")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if seen != "device-a" {
		t.Fatalf("expected provided device id, got %q", seen)
	}
}
