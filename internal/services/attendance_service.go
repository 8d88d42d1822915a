package services

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"gorm.io/datatypes"
)

type AttendanceSummary struct {
	Month                int
	Year                 int
	TotalWorkingDays     int
	PresentDays          int
	AttendancePercentage float64
}

// AttendanceService keeps one record per employee per calendar day:
// no record -> checked in -> checked out.
type AttendanceService struct {
	attendance stores.AttendanceStore
	loc        *time.Location
	now        func() time.Time
}

func NewAttendanceService(attendance stores.AttendanceStore, loc *time.Location) *AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceService{attendance: attendance, loc: loc, now: time.Now}
}

// WithClock replaces the time source, used by tests.
func (s *AttendanceService) WithClock(now func() time.Time) *AttendanceService {
	s.now = now
	return s
}

func (s *AttendanceService) currentTime() time.Time {
	return s.now().In(s.loc).Truncate(time.Second)
}

func (s *AttendanceService) CheckIn(ctx context.Context, employeeID uint) (*models.Attendance, error) {
	now := s.currentTime()
	today := dateOf(now)

	record, err := s.attendance.FindByDate(ctx, employeeID, today)

	switch {
	case err == nil:
		if record.CheckIn != nil {
			return nil, newError(KindConflict, "Already checked in today")
		}

		ok, err := s.attendance.SetCheckIn(ctx, record.ID, now)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, newError(KindConflict, "Already checked in today")
		}

		record.CheckIn = &now
		return record, nil

	case errors.Is(err, stores.ErrNotFound):
		record = &models.Attendance{
			EmployeeID:     employeeID,
			AttendanceDate: datatypes.Date(today),
			CheckIn:        &now,
		}

		if err := s.attendance.Create(ctx, record); err != nil {
			if errors.Is(err, stores.ErrDuplicate) {
				return nil, newError(KindConflict, "Already checked in today")
			}
			return nil, err
		}
		return record, nil

	default:
		return nil, err
	}
}

func (s *AttendanceService) CheckOut(ctx context.Context, employeeID uint) (*models.Attendance, error) {
	now := s.currentTime()

	record, err := s.attendance.FindByDate(ctx, employeeID, dateOf(now))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindValidation, "No check-in found for today")
		}
		return nil, err
	}

	if record.CheckIn == nil {
		return nil, newError(KindValidation, "No check-in found for today")
	}
	if record.CheckOut != nil {
		return nil, newError(KindConflict, "Already checked out today")
	}

	minutes := WorkedMinutes(*record.CheckIn, now)

	ok, err := s.attendance.SetCheckOut(ctx, record.ID, now, minutes)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newError(KindConflict, "Already checked out today")
	}

	record.CheckOut = &now
	record.WorkMinutes = &minutes
	return record, nil
}

// WorkedMinutes is the whole number of minutes between check-in and check-out.
func WorkedMinutes(checkIn, checkOut time.Time) int {
	seconds := int64(checkOut.Sub(checkIn) / time.Second)
	if seconds < 0 {
		return 0
	}
	return int(seconds / 60)
}

func (s *AttendanceService) List(ctx context.Context, employeeID uint, dates DateRange) ([]models.Attendance, error) {
	if err := dates.validate(); err != nil {
		return nil, err
	}

	return s.attendance.List(ctx, stores.AttendanceFilter{
		EmployeeID: &employeeID,
		From:       dates.From,
		To:         dates.To,
	})
}

func (s *AttendanceService) ListAll(ctx context.Context, dates DateRange) ([]models.Attendance, error) {
	if err := dates.validate(); err != nil {
		return nil, err
	}

	return s.attendance.List(ctx, stores.AttendanceFilter{From: dates.From, To: dates.To})
}

func (s *AttendanceService) Summary(ctx context.Context, employeeID uint, month, year int) (*AttendanceSummary, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	from, to := monthBounds(year, month)

	records, err := s.attendance.List(ctx, stores.AttendanceFilter{
		EmployeeID: &employeeID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, err
	}

	present := countPresent(records)

	return &AttendanceSummary{
		Month:                month,
		Year:                 year,
		TotalWorkingDays:     len(records),
		PresentDays:          present,
		AttendancePercentage: percentage(present, len(records)),
	}, nil
}

func countPresent(records []models.Attendance) int {
	present := 0
	for _, r := range records {
		if r.CheckIn != nil {
			present++
		}
	}
	return present
}
