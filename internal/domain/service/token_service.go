package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claim set carried by the bearer token.
// The subject is the user ID; issue and expiry times live in RegisteredClaims.
type Claims struct {
	// UserID is decoded from the registered Subject claim after validation.
	UserID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// Tokens are stateless: nothing is persisted, and a token stays valid until
// its natural expiry regardless of server-side state changes.
type TokenService interface {
	// Generate issues a signed, time-limited token for the given user.
	Generate(userID uuid.UUID) (string, error)

	// Validate checks signature and expiry and returns the decoded claims.
	Validate(tokenString string) (*Claims, error)
}
