package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role constants for the Bri-Bank platform. The role is resolved once when the
// token is issued; downstream code never derives it from free-text descriptions.
const (
	RoleOfficer   = "officer"
	RoleValidator = "validator"
)

// Claims represents the JWT claims carried by Bri-Bank access tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string   `json:"user_id"`
	BranchID string   `json:"branch_id"`
	Roles    []string `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
