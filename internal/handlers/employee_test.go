package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateMyProfile(t *testing.T) {
	s := newTestServer(t, nil)
	department := "Engineering"

	updated := employeeProfile(7, 1)
	updated.Department = &department

	s.employees.On("FindByUserID", mock.Anything, uint(1)).Return(employeeProfile(7, 1), nil).Once()
	s.employees.On("Update", mock.Anything, uint(7), map[string]interface{}{"department": "Engineering"}).
		Return(updated, nil).Once()

	w := s.do(http.MethodPut, "/employees/me", s.token(1, types.RoleEmployee), gin.H{"department": "Engineering"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profile types.EmployeeResponse
	decode(t, w, &profile)
	require.NotNil(t, profile.Department)
	assert.Equal(t, "Engineering", *profile.Department)
}

func TestUpdateMyProfileFromQuery(t *testing.T) {
	s := newTestServer(t, nil)

	s.employees.On("FindByUserID", mock.Anything, uint(1)).Return(employeeProfile(7, 1), nil).Once()
	s.employees.On("Update", mock.Anything, uint(7), map[string]interface{}{"phone": "555-0100"}).
		Return(employeeProfile(7, 1), nil).Once()

	w := s.do(http.MethodPut, "/employees/me?phone=555-0100", s.token(1, types.RoleEmployee), nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestUpdateMyProfileWithoutProfile(t *testing.T) {
	s := newTestServer(t, nil)

	s.employees.On("FindByUserID", mock.Anything, uint(1)).Return(nil, stores.ErrNotFound).Once()

	w := s.do(http.MethodPut, "/employees/me", s.token(1, types.RoleEmployee), gin.H{"phone": "1"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee profile not found", errorOf(t, w))
}

func TestAdminUpdatesEmployee(t *testing.T) {
	s := newTestServer(t, nil)

	s.employees.On("Update", mock.Anything, uint(7), map[string]interface{}{"designation": "Lead"}).
		Return(employeeProfile(7, 1), nil).Once()
	s.employees.On("Update", mock.Anything, uint(8), mock.Anything).Return(nil, stores.ErrNotFound).Once()

	token := s.token(9, types.RoleAdmin)

	w := s.do(http.MethodPut, "/employees/7", token, gin.H{"designation": "Lead"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodPut, "/employees/8", token, gin.H{"designation": "Lead"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Employee not found", errorOf(t, w))
}

func TestListEmployees(t *testing.T) {
	s := newTestServer(t, nil)

	s.employees.On("List", mock.Anything).
		Return([]models.Employee{*employeeProfile(7, 1), *employeeProfile(8, 2)}, nil).Once()

	w := s.do(http.MethodGet, "/employees", s.token(9, types.RoleAdmin), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var employees []types.EmployeeResponse
	decode(t, w, &employees)
	assert.Len(t, employees, 2)
}

func TestStorageFailureIsInternalError(t *testing.T) {
	s := newTestServer(t, nil)

	s.employees.On("GetByID", mock.Anything, uint(7)).Return(nil, errors.New("connection reset")).Once()

	w := s.do(http.MethodGet, "/employees/7", s.token(9, types.RoleAdmin), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", errorOf(t, w))
}
