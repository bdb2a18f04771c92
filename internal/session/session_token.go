package session

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID    string
	ExpiresAt time.Time
}

// ParseToken decodes the payload of a bearer token without verifying its
// signature; the backend does that. The header segment is not inspected. A
// token is usable iff it has three segments, the payload decodes and its exp
// claim is after now.
func ParseToken(raw string, now time.Time) (Claims, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}

	payload, err := jwt.NewParser().DecodeSegment(parts[1])
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrInvalidToken
	}
	if !exp.Time.After(now) {
		return Claims{}, ErrTokenExpired
	}

	return Claims{
		UserID:    userIDFrom(claims),
		ExpiresAt: exp.Time,
	}, nil
}

func userIDFrom(claims jwt.MapClaims) string {
	for _, key := range []string{"sub", "user_id", "userId", "id"} {
		switch v := claims[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
