// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/delivery/http/middleware"
	"crewdesk/internal/delivery/http/response"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/usecase"
)

const pendingCookieTTL = 15 * time.Minute

// AccountHandler holds dependencies for the self-service account handlers.
type AccountHandler struct {
	uc      usecase.AccountUsecase
	cookies *middleware.AuthMiddleware
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, cookies *middleware.AuthMiddleware) *AccountHandler {
	return &AccountHandler{uc: uc, cookies: cookies}
}

// Signup handles the registration request and leaves the browser with a
// pending-verification cookie.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Signup(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetPendingCookie(c, output.PendingToken, pendingCookieTTL)

	return response.Success(c, http.StatusOK, echo.Map{"email": output.Email},
		"OTP sent. Please verify your email.")
}

// VerifyOtp completes the signup: it checks the OTP against the pending
// cookie and opens a session.
func (h *AccountHandler) VerifyOtp(c echo.Context) error {
	var input usecase.VerifyEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP input")
	}

	pending, err := c.Cookie(h.cookies.PendingCookieName())
	if err != nil || pending.Value == "" {
		return errors.WithStack(domainerrors.ErrVerificationRequired)
	}
	input.PendingToken = pending.Value

	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifyEmail(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearPendingCookie(c)
	h.cookies.SetSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, output.Identity, "Email verified. You are now logged in.")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, output.Identity, "Login successful")
}

// Logout clears the session cookie.
func (h *AccountHandler) Logout(c echo.Context) error {
	h.cookies.ClearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// Me returns the signed-in identity.
func (h *AccountHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, identity, "")
}

// ForgotPassword mails a reset link for a known email.
func (h *AccountHandler) ForgotPassword(c echo.Context) error {
	var input usecase.ForgotPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset link sent.")
}

// ResetPassword sets a new password for a valid reset token.
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password has been reset. Please log in.")
}
