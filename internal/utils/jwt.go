package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [TokenExpired] when the token cannot be parsed as
// a JWT. Opaque tokens are valid bearer tokens, so callers usually treat this
// as "unknown expiry".
var ErrNotJWT = errors.New("token is not a JWT")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpired reports whether the JWT in tokenString carries an "exp" claim
// that is before now. The signature is not verified: only the server can do
// that, the client merely avoids sending a token that is known to be stale.
//
// A token without "exp" is never expired. A token that is not a JWT returns
// [ErrNotJWT].
func TokenExpired(tokenString string, now time.Time) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return false, nil
	}

	return exp.Time.Before(now), nil
}
