package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/dayflow-dev/dayflow/internal/types"
	"gorm.io/datatypes"
)

type LeaveApplication struct {
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Reason    *string
}

type LeaveService struct {
	leaves stores.LeaveStore
	loc    *time.Location
	now    func() time.Time
}

func NewLeaveService(leaves stores.LeaveStore, loc *time.Location) *LeaveService {
	if loc == nil {
		loc = time.Local
	}
	return &LeaveService{leaves: leaves, loc: loc, now: time.Now}
}

func (s *LeaveService) WithClock(now func() time.Time) *LeaveService {
	s.now = now
	return s
}

func (s *LeaveService) Apply(ctx context.Context, employeeID uint, app LeaveApplication) (*models.LeaveRequest, error) {
	if !slices.Contains(types.LeaveTypes, app.LeaveType) {
		return nil, newError(KindValidation, "Leave type must be one of %s", strings.Join(types.LeaveTypes, ", "))
	}

	start, end := dateOf(app.StartDate), dateOf(app.EndDate)
	if start.After(end) {
		return nil, newError(KindValidation, "Start date cannot be after end date")
	}

	leave := &models.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  app.LeaveType,
		StartDate:  datatypes.Date(start),
		EndDate:    datatypes.Date(end),
		Reason:     app.Reason,
		Status:     types.LeaveStatusPending,
		AppliedOn:  datatypes.Date(dateOf(s.now().In(s.loc))),
	}

	if err := s.leaves.CreateLeave(ctx, leave); err != nil {
		return nil, err
	}

	return leave, nil
}

func (s *LeaveService) Approve(ctx context.Context, leaveID uint) (*models.LeaveRequest, error) {
	return s.decide(ctx, leaveID, types.LeaveStatusApproved)
}

func (s *LeaveService) Reject(ctx context.Context, leaveID uint) (*models.LeaveRequest, error) {
	return s.decide(ctx, leaveID, types.LeaveStatusRejected)
}

// decide moves a Pending request to its final status exactly once.
func (s *LeaveService) decide(ctx context.Context, leaveID uint, status string) (*models.LeaveRequest, error) {
	leave, err := s.getLeave(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	if leave.Status != types.LeaveStatusPending {
		return nil, newError(KindConflict, "Leave already %s", leave.Status)
	}

	ok, err := s.leaves.TransitionStatus(ctx, leaveID, types.LeaveStatusPending, status)
	if err != nil {
		return nil, err
	}

	if !ok {
		// lost a race with another decision
		current, err := s.getLeave(ctx, leaveID)
		if err != nil {
			return nil, err
		}
		return nil, newError(KindConflict, "Leave already %s", current.Status)
	}

	leave.Status = status
	return leave, nil
}

func (s *LeaveService) getLeave(ctx context.Context, leaveID uint) (*models.LeaveRequest, error) {
	leave, err := s.leaves.GetByID(ctx, leaveID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindNotFound, "Leave request not found")
		}
		return nil, err
	}
	return leave, nil
}

func (s *LeaveService) ListMine(ctx context.Context, employeeID uint) ([]models.LeaveRequest, error) {
	return s.leaves.List(ctx, &employeeID)
}

func (s *LeaveService) ListAll(ctx context.Context) ([]models.LeaveRequest, error) {
	return s.leaves.List(ctx, nil)
}
