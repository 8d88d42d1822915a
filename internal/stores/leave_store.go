package stores

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"gorm.io/gorm"
)

type LeaveStore interface {
	CreateLeave(ctx context.Context, l *models.LeaveRequest) error
	GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error)
	// TransitionStatus moves id from one status to another and reports
	// false when the row was not in the from status.
	TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error)
	// List returns every request, or only those of employeeID when set.
	List(ctx context.Context, employeeID *uint) ([]models.LeaveRequest, error)
}

type GormLeaveStore struct{ DB *gorm.DB }

func (s *GormLeaveStore) CreateLeave(ctx context.Context, l *models.LeaveRequest) error {
	return translate(s.DB.WithContext(ctx).Create(l).Error)
}

func (s *GormLeaveStore) GetByID(ctx context.Context, id uint) (*models.LeaveRequest, error) {
	var l models.LeaveRequest
	if err := s.DB.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (s *GormLeaveStore) TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error) {
	res := s.DB.WithContext(ctx).Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *GormLeaveStore) List(ctx context.Context, employeeID *uint) ([]models.LeaveRequest, error) {
	query := s.DB.WithContext(ctx).Model(&models.LeaveRequest{})

	if employeeID != nil {
		query = query.Where("employee_id = ?", *employeeID)
	}

	var leaves []models.LeaveRequest
	if err := query.Order("applied_on DESC").Order("id DESC").Find(&leaves).Error; err != nil {
		return nil, translate(err)
	}
	return leaves, nil
}
