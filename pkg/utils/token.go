package utils

import (
	"errors"
	"fmt"

	"finan/ms-pos-report/pkg/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func ParseAccessToken(secret, issuer, tokenString string) (model.Identity, error) {
	if secret == "" {
		return model.Identity{}, errors.New("jwt secret is empty")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &model.AccessTokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return model.Identity{}, err
	}
	claims, ok := token.Claims.(*model.AccessTokenClaims)
	if !ok || !token.Valid {
		return model.Identity{}, errors.New("invalid token")
	}

	identity := model.Identity{Role: claims.Role}
	if identity.UserID, err = uuid.Parse(claims.UserID); err != nil {
		return model.Identity{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	// brand admins are not bound to a store
	if claims.StoreID != "" {
		if identity.StoreID, err = uuid.Parse(claims.StoreID); err != nil {
			return model.Identity{}, fmt.Errorf("invalid store_id claim: %w", err)
		}
	}
	if claims.BrandID != "" {
		if identity.BrandID, err = uuid.Parse(claims.BrandID); err != nil {
			return model.Identity{}, fmt.Errorf("invalid brand_id claim: %w", err)
		}
	}

	return identity, nil
}

// CreateAccessToken signs claims for identity. Used by internal tooling and tests.
func CreateAccessToken(secret string, identity model.Identity, registered jwt.RegisteredClaims) (string, error) {
	claims := model.AccessTokenClaims{
		UserID:           identity.UserID.String(),
		Role:             identity.Role,
		RegisteredClaims: registered,
	}
	if identity.StoreID != uuid.Nil {
		claims.StoreID = identity.StoreID.String()
	}
	if identity.BrandID != uuid.Nil {
		claims.BrandID = identity.BrandID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
