package authtoken

import "github.com/golang-jwt/jwt/v5"

// Claims is the token payload.
type Claims struct {
	jwt.RegisteredClaims
	Role  string   `json:"role"`
	Roles []string `json:"roles,omitempty"`
	Scope string   `json:"scope,omitempty"`
}
