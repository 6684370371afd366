// api/util/token.go
package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
)

// TokenClaims is the bearer token payload.
type TokenClaims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens.
type TokenManager struct {
	secret    []byte
	expiresIn time.Duration
	now       func() time.Time
}

func NewTokenManager(secret string, expiresIn time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiresIn: expiresIn, now: time.Now}
}

func (tm *TokenManager) GenerateToken(userID int64) (string, error) {
	issuedAt := tm.now()
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tm.expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the token and returns its user id.
func (tm *TokenManager) ParseToken(tokenString string) (int64, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(tm.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, echo_errors.ErrTokenExpired
		}
		return 0, fmt.Errorf("%w: %v", echo_errors.ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID <= 0 {
		return 0, echo_errors.ErrInvalidToken
	}
	return claims.UserID, nil
}
