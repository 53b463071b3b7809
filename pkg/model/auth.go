package model

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the payload of the bearer token issued by the auth service.
type AccessTokenClaims struct {
	UserID  string `json:"user_id"`
	StoreID string `json:"store_id"`
	BrandID string `json:"brand_id"`
	Role    Role   `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID  uuid.UUID
	StoreID uuid.UUID
	BrandID uuid.UUID
	Role    Role
}

func (i Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
