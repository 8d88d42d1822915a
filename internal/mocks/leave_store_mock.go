package mocks

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/stretchr/testify/mock"
)

type LeaveStore struct{ mock.Mock }

func (m *LeaveStore) CreateLeave(ctx context.Context, l *models.LeaveRequest) error {
	return m.Called(ctx, l).Error(0)
}

func (m *LeaveStore) GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LeaveRequest), args.Error(1)
}

func (m *LeaveStore) TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *LeaveStore) List(ctx context.Context, employeeID *uint) ([]models.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LeaveRequest), args.Error(1)
}
