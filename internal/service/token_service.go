// Package service contains the service layer for the ElectroWay API
package service

import (
	"fmt"
	"time"

	"github.com/electroway/electrowayapi/pkg/utils/apperr"
	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the absolute lifetime of an issued token. There is no
// refresh path; a token expires exactly this long after issuance.
const tokenTTL = 4 * time.Hour

// TokenService issues and verifies signed, time-limited identity
// assertions. It holds no state beyond the signing secret.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service with the given signing secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces a signed token embedding the user identity and an
// absolute expiry
func (s *TokenService) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperr.Internal("failed to sign token", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of a token and returns the
// embedded user identity
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperr.Auth("Invalid token")
	}
	if claims.Subject == "" {
		return "", apperr.Auth("Invalid token")
	}
	return claims.Subject, nil
}
