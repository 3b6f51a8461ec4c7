package middleware

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"github.com/thesrcielos/SnakeArena/internal/user"
)

const (
	tokenContextKey = "session_token"
	userContextKey  = "current_user"
)

type SessionAuthenticator interface {
	Authenticate(ctx context.Context, claims *user.SessionClaims) (*user.User, error)
}

// SetupJWTMiddleware verifies the session cookie signature and expiry.
func SetupJWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  secret,
		TokenLookup: "cookie:" + user.SessionCookieName,
		ContextKey:  tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return apperrors.Unauthorized("Not authenticated")
		},
	})
}

// RequireSession rejects revoked sessions and sessions of deleted users, and
// stores the resolved user on the context.
func RequireSession(secret []byte, auth SessionAuthenticator) echo.MiddlewareFunc {
	verify := SetupJWTMiddleware(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return apperrors.Unauthorized("Not authenticated")
			}
			claims, ok := token.Claims.(*user.SessionClaims)
			if !ok {
				return apperrors.Unauthorized("Not authenticated")
			}

			u, err := auth.Authenticate(c.Request().Context(), claims)
			if err != nil {
				return err
			}
			c.Set(userContextKey, u)
			return next(c)
		})
	}
}

func CurrentUser(c echo.Context) (*user.User, bool) {
	u, ok := c.Get(userContextKey).(*user.User)
	return u, ok && u != nil
}
