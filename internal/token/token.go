// Package token extracts identity claims from auth tokens.
//
// The client never holds the backend's signing key, so tokens are
// parsed without signature verification: the backend vouched for the
// token when it issued it, and the only thing read here is the user
// identity used to scope local state. A token that does not parse at
// all is reported as an error; callers decide whether that is fatal
// (explicit login) or recoverable (stale persisted token at startup).
package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the subset of token claims Vitrine cares about.
type Claims struct {
	UserID string
}

// Decode parses a JWT without verifying its signature and returns the
// user identity claims. The user id is read from the "userId" claim,
// falling back to the standard "sub" claim.
func Decode(raw string) (Claims, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Claims{}, fmt.Errorf("token is empty")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(trimmed, claims); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	userID := claimString(claims, "userId")
	if userID == "" {
		userID = claimString(claims, "sub")
	}
	if userID == "" {
		return Claims{}, fmt.Errorf("token carries no user id claim")
	}
	return Claims{UserID: userID}, nil
}

// claimString normalizes a claim value to a string. JSON numbers decode
// as float64, and the backend issues numeric user ids.
func claimString(claims jwt.MapClaims, key string) string {
	switch v := claims[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}
