package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "crewdesk/internal/delivery/context"
	"crewdesk/internal/delivery/http/response"
	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/usecase"
)

// DashboardHandler holds dependencies for the signed-in dashboard
// handlers. Every route here runs behind the auth middleware.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Index returns the dashboard overview for the signed-in user.
func (h *DashboardHandler) Index(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	overview, err := h.uc.Overview(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "")
}

// AddNote adds a note to the signed-in user's dashboard.
func (h *DashboardHandler) AddNote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.AddNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.AddNote(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, note, "Note added")
}

// UpdateNote edits one of the signed-in user's notes.
func (h *DashboardHandler) UpdateNote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid note id")
	}

	var input usecase.UpdateNoteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	note, err := h.uc.UpdateNote(c.Request().Context(), userID, noteID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, note, "Note updated")
}

// DeleteNote removes one of the signed-in user's notes.
func (h *DashboardHandler) DeleteNote(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	noteID, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid note id")
	}

	if err := h.uc.DeleteNote(c.Request().Context(), userID, noteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Note deleted")
}

// AddHabit adds a habit for the signed-in user.
func (h *DashboardHandler) AddHabit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input usecase.AddHabitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	habit, err := h.uc.AddHabit(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, habit, "Habit added")
}

// ToggleHabit flips one calendar day's completion for a habit.
func (h *DashboardHandler) ToggleHabit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	habitID, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid habit id")
	}

	var input usecase.ToggleHabitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	habit, err := h.uc.ToggleHabit(c.Request().Context(), userID, habitID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habit, "Habit updated")
}

// DeleteHabit removes one of the signed-in user's habits.
func (h *DashboardHandler) DeleteHabit(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	habitID, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid habit id")
	}

	if err := h.uc.DeleteHabit(c.Request().Context(), userID, habitID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Habit deleted")
}

// currentUserID reads the authenticated user's id off the context.
func currentUserID(c echo.Context) (int, error) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return 0, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return identity.UserID, nil
}
