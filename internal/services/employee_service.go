package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
)

// ProfileUpdate carries the fields to change; nil fields are left untouched.
type ProfileUpdate struct {
	FullName    *string
	Department  *string
	Designation *string
	Phone       *string
	Address     *string
}

func (u ProfileUpdate) fields() (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if u.FullName != nil {
		name := strings.TrimSpace(*u.FullName)
		if name == "" {
			return nil, newError(KindValidation, "Full name cannot be empty")
		}
		fields["full_name"] = name
	}
	if u.Department != nil {
		fields["department"] = *u.Department
	}
	if u.Designation != nil {
		fields["designation"] = *u.Designation
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if u.Address != nil {
		fields["address"] = *u.Address
	}

	return fields, nil
}

type EmployeeService struct {
	employees stores.EmployeeStore
	users     stores.UserStore
}

func NewEmployeeService(employees stores.EmployeeStore, users stores.UserStore) *EmployeeService {
	return &EmployeeService{employees: employees, users: users}
}

// defaultFullName is the local part of an email address.
func defaultFullName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func (s *EmployeeService) GetOrCreateProfile(ctx context.Context, userID uint, email string) (*models.Employee, error) {
	return s.employees.GetOrCreate(ctx, userID, defaultFullName(email))
}

// EnsureProfile returns the caller's profile, creating it on first access.
func (s *EmployeeService) EnsureProfile(ctx context.Context, userID uint) (*models.Employee, error) {
	employee, err := s.employees.FindByUserID(ctx, userID)
	if err == nil {
		return employee, nil
	}
	if !errors.Is(err, stores.ErrNotFound) {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindUnauthenticated, "User not found")
		}
		return nil, err
	}

	return s.GetOrCreateProfile(ctx, user.ID, user.Email)
}

// ResolveProfile returns the caller's profile without creating one.
func (s *EmployeeService) ResolveProfile(ctx context.Context, userID uint) (*models.Employee, error) {
	employee, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindNotFound, "Employee profile not found")
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) UpdateOwnProfile(ctx context.Context, userID uint, update ProfileUpdate) (*models.Employee, error) {
	employee, err := s.ResolveProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.UpdateProfile(ctx, employee.ID, update)
}

func (s *EmployeeService) UpdateProfile(ctx context.Context, employeeID uint, update ProfileUpdate) (*models.Employee, error) {
	fields, err := update.fields()
	if err != nil {
		return nil, err
	}

	employee, err := s.employees.Update(ctx, employeeID, fields)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindNotFound, "Employee not found")
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID uint) (*models.Employee, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindNotFound, "Employee not found")
		}
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return s.employees.List(ctx)
}
