package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// NormalizeToken accepts either a raw token or a full "Bearer <token>"
// header value and returns the raw token.
func NormalizeToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		if token, err := ParseBearerToken(raw); err == nil {
			return token
		}
	}
	return raw
}

// SubjectFromJWT returns the "sub" claim of tokenString without verifying
// the signature. The server remains the authority on token validity; the
// client only reads its own identity from the token it was handed.
func SubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("get token subject: %w", err)
	}
	if sub == "" {
		return "", errors.New("empty subject error")
	}

	return sub, nil
}
