package stores

import (
	"context"
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceFilter narrows a listing. Zero values mean "no constraint";
// From and To are inclusive calendar dates.
type AttendanceFilter struct {
	EmployeeID *uint
	From       *time.Time
	To         *time.Time
}

type AttendanceStore interface {
	FindByDate(ctx context.Context, employeeID uint, date time.Time) (*models.Attendance, error)
	// Create returns ErrDuplicate when a row for (employee, date) exists.
	Create(ctx context.Context, a *models.Attendance) error
	// SetCheckIn and SetCheckOut report false when the field was already set.
	SetCheckIn(ctx context.Context, id uint, at time.Time) (bool, error)
	SetCheckOut(ctx context.Context, id uint, at time.Time, workMinutes int) (bool, error)
	List(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error)
}

type GormAttendanceStore struct{ DB *gorm.DB }

func (s *GormAttendanceStore) FindByDate(ctx context.Context, employeeID uint, date time.Time) (*models.Attendance, error) {
	var a models.Attendance
	err := s.DB.WithContext(ctx).
		Where("employee_id = ? AND attendance_date = ?", employeeID, datatypes.Date(date)).
		First(&a).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormAttendanceStore) Create(ctx context.Context, a *models.Attendance) error {
	return translate(s.DB.WithContext(ctx).Create(a).Error)
}

func (s *GormAttendanceStore) SetCheckIn(ctx context.Context, id uint, at time.Time) (bool, error) {
	res := s.DB.WithContext(ctx).Model(&models.Attendance{}).
		Where("id = ? AND check_in IS NULL", id).
		Update("check_in", at)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *GormAttendanceStore) SetCheckOut(ctx context.Context, id uint, at time.Time, workMinutes int) (bool, error) {
	res := s.DB.WithContext(ctx).Model(&models.Attendance{}).
		Where("id = ? AND check_in IS NOT NULL AND check_out IS NULL", id).
		Updates(map[string]interface{}{
			"check_out":    at,
			"work_minutes": workMinutes,
		})
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *GormAttendanceStore) List(ctx context.Context, filter AttendanceFilter) ([]models.Attendance, error) {
	query := s.DB.WithContext(ctx).Model(&models.Attendance{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.From != nil {
		query = query.Where("attendance_date >= ?", datatypes.Date(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("attendance_date <= ?", datatypes.Date(*filter.To))
	}

	var records []models.Attendance
	if err := query.Order("attendance_date DESC").Order("id DESC").Find(&records).Error; err != nil {
		return nil, translate(err)
	}
	return records, nil
}
