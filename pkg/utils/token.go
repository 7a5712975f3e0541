package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/segmentio/ksuid"
)

// GenerateSessionToken issues an HS256 session token for a logged-in member.
// The jti is returned separately so the caller can key server-side session
// state by it.
func GenerateSessionToken(secret, email string, ttl time.Duration) (token string, jti string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("session secret is not set")
	}

	jti = ksuid.New().String()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"jti":   jti,
		"exp":   time.Now().Add(ttl).Unix(),
	})

	token, err = t.SignedString([]byte(secret))
	if err != nil {
		return "", "", err
	}

	return token, jti, nil
}

// ParseSessionToken validates a session token and returns its claims.
func ParseSessionToken(secret, tokenString string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is not set")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if token == nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	if err := claims.Valid(); err != nil {
		return nil, fmt.Errorf("token claims invalid: %w", err)
	}

	return claims, nil
}
