package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "crewdesk/internal/domain/errors"
	"crewdesk/internal/usecase"
)

func createTestEmployeeService(t *testing.T) (*employeeService, *testDeps) {
	t.Helper()

	deps := newTestDeps(t)
	svc := NewEmployeeService(deps.employees, deps.logger).(*employeeService)

	return svc, deps
}

func TestEmployeeService_CRUD(t *testing.T) {
	svc, _ := createTestEmployeeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, usecase.CreateEmployeeInput{
		Name: "Bob", Age: 34, Email: "bob@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := svc.Update(ctx, created.ID, usecase.UpdateEmployeeInput{
		Name: "Robert", Age: 35, Email: "bob@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), domainerrors.ErrEmployeeNotFound)
}
