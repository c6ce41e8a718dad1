package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"crewdesk/config"
	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/delivery/http/response"
	"crewdesk/internal/usecase"
)

// AuthMiddleware guards routes behind the signed session cookie. The
// session's user is re-looked-up on every request so a deleted account
// is signed out immediately, not when its token expires.
type AuthMiddleware struct {
	accounts usecase.AccountUsecase
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts, cfg: cfg}
}

// Authenticate validates the session cookie and stores the identity on
// the context. An invalid or orphaned session clears the cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required.")
		}

		identity, err := m.accounts.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			m.ClearSessionCookie(c)

			return response.Unauthorized(c, "UNAUTHORIZED", "Session is no longer valid. Please log in again.")
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// SetSessionCookie writes the session cookie for a fresh login.
func (m *AuthMiddleware) SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.cfg.Session.TTL),
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func (m *AuthMiddleware) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PendingCookieName is the cookie holding a pending-workflow token.
func (m *AuthMiddleware) PendingCookieName() string {
	return m.cfg.Session.CookieName + "_pending"
}

// SetPendingCookie writes the pending-workflow cookie.
func (m *AuthMiddleware) SetPendingCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     m.PendingCookieName(),
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearPendingCookie expires the pending-workflow cookie.
func (m *AuthMiddleware) ClearPendingCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.PendingCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
