package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"crewdesk/internal/delivery/http/middleware"
	"crewdesk/internal/delivery/http/response"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/usecase"
)

// UserHandler holds dependencies for the user admin handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	cookies *middleware.AuthMiddleware
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cookies *middleware.AuthMiddleware) *UserHandler {
	return &UserHandler{uc: uc, cookies: cookies}
}

// List returns all users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// Get returns one user by id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid user id")
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// Create starts the OTP-gated creation flow: the user is held in a
// pending cookie until the code emailed to them is confirmed.
func (h *UserHandler) Create(c echo.Context) error {
	var input usecase.CreateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.BeginCreate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.SetPendingCookie(c, output.PendingToken, pendingCookieTTL)

	return response.Success(c, http.StatusOK, echo.Map{"email": output.Email},
		"OTP sent. Confirm it to create the user.")
}

// VerifyOtp completes the OTP-gated creation flow.
func (h *UserHandler) VerifyOtp(c echo.Context) error {
	var input usecase.ConfirmUserInput
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

	user, err := h.uc.ConfirmCreate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.ClearPendingCookie(c)

	return response.Success(c, http.StatusCreated, user, "User created")
}

// Update replaces a user's details.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid user id")
	}

	var input usecase.UpdateUserInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "User updated")
}

// Delete removes a user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid user id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}
