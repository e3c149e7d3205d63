package session

import (
	"github.com/ZOMBIEx-z/ClothingStore/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the typed JWT the marketplace backend issues to clients.
// The gateway verifies it with the shared secret; it never mints tokens itself.
type Claims struct {
	Role enums.Role `json:"role"`
	jwt.RegisteredClaims
}

// Username returns the token subject.
func (c *Claims) Username() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
