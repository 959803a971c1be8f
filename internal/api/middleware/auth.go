package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// BanChecker reports whether a user id is on the ban denylist.
type BanChecker interface {
	Contains(ctx context.Context, userID string) (bool, error)
}

// Auth validates the JWT, rejects denylisted users, and injects the claims
// into the echo context under "user_id", "username" and "role".
func Auth(jwtSecret string, banlist BanChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["user_id"].(string)

			// A banned user's tokens stay cryptographically valid until they
			// expire; the denylist closes that window.
			if banlist != nil && userID != "" {
				banned, err := banlist.Contains(c.Request().Context(), userID)
				if err == nil && banned {
					return echo.NewHTTPError(http.StatusUnauthorized, "account is banned")
				}
			}

			c.Set("user_id", claims["user_id"])
			c.Set("username", claims["username"])
			c.Set("role", claims["role"])

			return next(c)
		}
	}
}
