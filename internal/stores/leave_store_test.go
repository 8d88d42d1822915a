package stores

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newLeave(employeeID uint, applied time.Time) *models.LeaveRequest {
	return &models.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  "Sick",
		StartDate:  datatypes.Date(applied),
		EndDate:    datatypes.Date(applied),
		Status:     types.LeaveStatusPending,
		AppliedOn:  datatypes.Date(applied),
	}
}

func TestLeaveTransitionHappensOnce(t *testing.T) {
	database := newTestDB(t)
	store := &GormLeaveStore{DB: database}
	ctx := context.Background()
	employee := seedEmployee(t, database, "a@x.com")

	leave := newLeave(employee.ID, day(2024, time.May, 6))
	require.NoError(t, store.CreateLeave(ctx, leave))

	ok, err := store.TransitionStatus(ctx, leave.ID, types.LeaveStatusPending, types.LeaveStatusApproved)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.TransitionStatus(ctx, leave.ID, types.LeaveStatusPending, types.LeaveStatusRejected)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := store.GetByID(ctx, leave.ID)
	require.NoError(t, err)
	assert.Equal(t, types.LeaveStatusApproved, stored.Status)

	_, err = store.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLeaveListScopesAndOrders(t *testing.T) {
	database := newTestDB(t)
	store := &GormLeaveStore{DB: database}
	ctx := context.Background()
	alice := seedEmployee(t, database, "alice@x.com")
	bob := seedEmployee(t, database, "bob@x.com")

	require.NoError(t, store.CreateLeave(ctx, newLeave(alice.ID, day(2024, time.May, 1))))
	require.NoError(t, store.CreateLeave(ctx, newLeave(alice.ID, day(2024, time.May, 9))))
	require.NoError(t, store.CreateLeave(ctx, newLeave(bob.ID, day(2024, time.May, 5))))

	mine, err := store.List(ctx, &alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "2024-05-09", time.Time(mine[0].AppliedOn).Format(types.DateLayout))

	all, err := store.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
