package mocks

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/stretchr/testify/mock"
)

type EmployeeStore struct{ mock.Mock }

func (m *EmployeeStore) GetOrCreate(ctx context.Context, userID uint, fullName string) (*models.Employee, error) {
	args := m.Called(ctx, userID, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeeStore) FindByUserID(ctx context.Context, userID uint) (*models.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeeStore) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeeStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Employee, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *EmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Employee), args.Error(1)
}
