package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Hafizirfan96/spu-backend/internal/config"
)

// TokenIssuer identifies this service in the iss claim.
const TokenIssuer = "SPU-Portal"

// Claims carried by an access token.
type TokenClaims struct {
	ApplicantID uuid.UUID
	Email       string
	Username    string
}

// ---------------------------------------------------------------------
// JWTService interface
// ---------------------------------------------------------------------
type JWTService interface {
	GenerateAccessToken(claims TokenClaims) (string, error)
	VerifyAccessToken(tokenString string) (*TokenClaims, error)
}

type jwtService struct {
	secret      []byte
	tokenExpiry time.Duration
}

func NewJWTService(cfg *config.Config) JWTService {
	return &jwtService{secret: cfg.JWTSecret, tokenExpiry: cfg.TokenExpiry}
}

func (j *jwtService) GenerateAccessToken(claims TokenClaims) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      claims.ApplicantID.String(),
		"email":    claims.Email,
		"username": claims.Username,
		"iss":      TokenIssuer,
		"iat":      now.Unix(),
		"exp":      now.Add(j.tokenExpiry).Unix(),
	})
	return token.SignedString(j.secret)
}

func (j *jwtService) VerifyAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	iss, _ := claims["iss"].(string)
	if iss != TokenIssuer {
		return nil, errors.New("invalid token issuer")
	}

	sub, _ := claims["sub"].(string)
	applicantID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	email, _ := claims["email"].(string)
	username, _ := claims["username"].(string)

	return &TokenClaims{ApplicantID: applicantID, Email: email, Username: username}, nil
}
