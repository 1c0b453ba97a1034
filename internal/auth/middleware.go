package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"noteauth/internal/errors"
)

const claimsContextKey = "user"

// JWTMiddleware rejects requests without a valid bearer token and stores the
// parsed *Claims in the echo context.
func JWTMiddleware(s *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return s.ValidateToken(auth)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errors.Unauthorized()
		},
	})
}

// ClaimsFromContext returns the claims stored by JWTMiddleware.
func ClaimsFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}

// RequireRole only lets requests through whose role claim is one of roles.
// It must run after JWTMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				return errors.Unauthorized()
			}
			if _, ok := allowed[claims.Role]; !ok {
				return errors.Forbidden()
			}
			return next(c)
		}
	}
}
