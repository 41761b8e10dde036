package auth

import (
	"testing"
	"time"

	"finledger/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestJWTConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = time.Hour

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.Generate(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Round trip: the resolved identity is the issuing subject.
	claims, err := jwtService.Validate(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// Construct the service directly with a negative TTL so the token is
	// already expired at issuance.
	svc := &jwtService{secret: "test_secret", ttl: -time.Minute}

	token, err := svc.Generate(uuid.New())
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("verifier_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.Generate(uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig("test_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		claims, validateErr := jwtService.Validate(token)
		assert.Error(t, validateErr)
		assert.Nil(t, claims)
	}
}
