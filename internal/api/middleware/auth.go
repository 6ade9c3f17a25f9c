package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/rentaldesk/rental-api/internal/core/domain"
)

// Context keys set by Auth.
const (
	OwnerIDKey = "owner_id"
	RoleKey    = "role"
)

// SubjectChecker confirms that a token subject may still act.
type SubjectChecker interface {
	Authenticate(ctx context.Context, ownerID uint) error
}

// Auth validates the JWT and injects the owner id and role into context.
// Tokens whose role is not owner get domain.ErrOwnerRoleRequired. When
// checker is non-nil the owner must still exist and be active.
func Auth(jwtSecret string, checker SubjectChecker) echo.MiddlewareFunc {
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
			}, jwt.WithExpirationRequired())
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			oid, _ := claims["oid"].(string)
			id, err := strconv.ParseUint(oid, 10, 64)
			if err != nil || id == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}
			role, _ := claims["role"].(string)
			if role != domain.RoleOwner {
				return domain.ErrOwnerRoleRequired
			}
			if checker != nil {
				if err := checker.Authenticate(c.Request().Context(), uint(id)); err != nil {
					return err
				}
			}

			c.Set(OwnerIDKey, uint(id))
			c.Set(RoleKey, role)

			return next(c)
		}
	}
}
