// Package middleware contains the reusable HTTP middleware of the service:
// caller identity resolution, response caching and rate limiting.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Identity resolves the caller identity for every request and stores it in
// the context under "user_id".
//
// When a Bearer token is presented it must be a valid HS256 JWT signed with
// secret; its "sub" (or "user_id") claim becomes the identity and a bad
// token is a 401. Without a token the request proceeds as fallbackUserID,
// the demo identity. This is the only place the demo identity exists; the
// core always receives the caller as an explicit parameter.
func Identity(secret, fallbackUserID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || secret == "" {
				c.Set("user_id", fallbackUserID)
				return next(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", subjectOf(tok, fallbackUserID))
			return next(c)
		}
	}
}

// subjectOf pulls the subject (sub) or user_id claim out of a parsed token,
// falling back to the demo identity when neither is present.
func subjectOf(tok *jwt.Token, fallback string) string {
	if cl, ok := tok.Claims.(jwt.MapClaims); ok {
		if v, ok := cl["sub"].(string); ok && v != "" {
			return v
		}
		if v, ok := cl["user_id"].(string); ok && v != "" {
			return v
		}
	}
	return fallback
}
