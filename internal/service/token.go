package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-calc-service/internal/model"
)

// TokenService issues and validates signed, expiring session tokens. The
// signing algorithm is fixed to HS256; tokens are stateless and cannot be
// revoked before expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured default token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for the given user. A non-positive ttl produces an
// already-expired token, which Validate rejects.
func (s *TokenService) Issue(userID int64, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate checks signature and expiry and returns the subject user ID.
// Failures map to model.ErrTokenExpired, model.ErrTokenMalformed or
// model.ErrTokenInvalid so callers can log the exact kind while presenting a
// uniform outward error.
func (s *TokenService) Validate(tokenString string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, model.ErrTokenInvalid
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	switch {
	case err == nil && parsed.Valid:
		// fall through to subject extraction
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, model.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return 0, model.ErrTokenMalformed
	default:
		return 0, model.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, model.ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, model.ErrTokenInvalid
	}

	return userID, nil
}
