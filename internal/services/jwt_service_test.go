package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hafizirfan96/spu-backend/internal/config"
)

func newTestJWTService(secret string, expiry time.Duration) JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:   []byte(secret),
		TokenExpiry: expiry,
	})
}

func TestJWT_GenerateAndVerify(t *testing.T) {
	svc := newTestJWTService("test-secret", time.Hour)
	claims := TokenClaims{
		ApplicantID: uuid.New(),
		Email:       "applicant@example.com",
		Username:    "applicant1",
	}

	token, err := svc.GenerateAccessToken(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.ApplicantID, parsed.ApplicantID)
	assert.Equal(t, claims.Email, parsed.Email)
	assert.Equal(t, claims.Username, parsed.Username)
}

func TestJWT_WrongSecretRejected(t *testing.T) {
	issuer := newTestJWTService("secret-a", time.Hour)
	verifier := newTestJWTService("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken(TokenClaims{ApplicantID: uuid.New()})
	require.NoError(t, err)

	_, err = verifier.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestJWT_ExpiredTokenRejected(t *testing.T) {
	svc := newTestJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateAccessToken(TokenClaims{ApplicantID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestJWT_GarbageTokenRejected(t *testing.T) {
	svc := newTestJWTService("test-secret", time.Hour)

	_, err := svc.VerifyAccessToken("not-a-token")
	assert.Error(t, err)
}
