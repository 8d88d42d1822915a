package mocks

import (
	"context"
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/stretchr/testify/mock"
)

type AttendanceStore struct{ mock.Mock }

func (m *AttendanceStore) FindByDate(ctx context.Context, employeeID uint, date time.Time) (*models.Attendance, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Attendance), args.Error(1)
}

func (m *AttendanceStore) Create(ctx context.Context, a *models.Attendance) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AttendanceStore) SetCheckIn(ctx context.Context, id uint, at time.Time) (bool, error) {
	args := m.Called(ctx, id, at)
	return args.Bool(0), args.Error(1)
}

func (m *AttendanceStore) SetCheckOut(ctx context.Context, id uint, at time.Time, workMinutes int) (bool, error) {
	args := m.Called(ctx, id, at, workMinutes)
	return args.Bool(0), args.Error(1)
}

func (m *AttendanceStore) List(ctx context.Context, filter stores.AttendanceFilter) ([]models.Attendance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Attendance), args.Error(1)
}
