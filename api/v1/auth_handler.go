package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	api_middleware "github.com/thesrcielos/SnakeArena/api/middleware"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"github.com/thesrcielos/SnakeArena/internal/user"
)

type AuthHandler struct {
	users        *user.UserService
	secureCookie bool
}

func NewAuthHandler(users *user.UserService, secureCookie bool) *AuthHandler {
	return &AuthHandler{users: users, secureCookie: secureCookie}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group, requireSession echo.MiddlewareFunc) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me, requireSession)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req user.SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}
	session, err := h.users.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, session)
	return c.JSON(http.StatusCreated, session.User)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation(INVALID_REQUEST)
	}
	session, err := h.users.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, session)
	return c.JSON(http.StatusOK, session.User)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(user.SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.users.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

func (h *AuthHandler) Me(c echo.Context) error {
	u, ok := api_middleware.CurrentUser(c)
	if !ok {
		return apperrors.Unauthorized("Not authenticated")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, s *user.Session) {
	c.SetCookie(&http.Cookie{
		Name:     user.SessionCookieName,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     user.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
