package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/tokens"
)

const (
	claimsKey = "token_claims"
	userIDKey = "user_id"
)

// RequireUser rejects requests without a valid token in the Authorization header
// (raw or with a Bearer prefix) and stores the caller's id on the context.
func RequireUser(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsKey,
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return tokens.Parse(auth, secret)
		},
		SuccessHandler: func(c echo.Context) {
			if claims, ok := c.Get(claimsKey).(*tokens.Claims); ok {
				c.Set(userIDKey, claims.UserID)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperr.Wrap(apperr.KindUnauthorized, "missing or invalid token", err)
		},
	})
}

// UserID returns the id stored by RequireUser, or nil.
func UserID(c echo.Context) *uint {
	if id, ok := c.Get(userIDKey).(uint); ok {
		return &id
	}
	return nil
}
