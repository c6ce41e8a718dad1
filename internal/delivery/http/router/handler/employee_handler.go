package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"crewdesk/internal/delivery/http/response"
	"crewdesk/internal/usecase"
)

// EmployeeHandler holds dependencies for the employee directory handlers.
type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List returns all employees.
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employees, "")
}

// Get returns one employee by id.
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid employee id")
	}

	employee, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "")
}

// Create adds a new employee.
func (h *EmployeeHandler) Create(c echo.Context) error {
	var input usecase.CreateEmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	employee, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, employee, "Employee created")
}

// Update replaces an employee's details.
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid employee id")
	}

	var input usecase.UpdateEmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	employee, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employee, "Employee updated")
}

// Delete removes an employee.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid employee id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee deleted")
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
