package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// TokenService validates bearer credentials against the shared signing
// secret. Verification is CPU-only; no store access happens here.
type TokenService struct {
	signingKey []byte
	logger     Logger
}

// NewTokenService creates a validator bound to the given signing key.
func NewTokenService(signingKey []byte, logger Logger) *TokenService {
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		signingKey: signingKey,
		logger:     logger,
	}
}

var _ TokenValidator = (*TokenService)(nil)

// Validate parses and verifies a raw token string, returning its claims.
// Only HS256 is accepted; tokens presenting any other algorithm fail as
// malformed before the payload is looked at.
func (ts *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(err, ErrTokenMalformed.Category, ErrTokenMalformed.Message).
			WithTextCode(ErrTokenMalformed.TextCode)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService validate could not decode claims")
		return nil, ErrTokenMalformed
	}

	if !claims.HasIdentity() {
		return nil, errors.New("missing user identification", ErrTokenMalformed.Category).
			WithTextCode(ErrTokenMalformed.TextCode).
			WithCode(errors.CodeUnauthorized)
	}

	return claims, nil
}
