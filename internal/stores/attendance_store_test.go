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

func TestAttendanceOneRowPerEmployeeAndDay(t *testing.T) {
	database := newTestDB(t)
	store := &GormAttendanceStore{DB: database}
	ctx := context.Background()
	employee := seedEmployee(t, database, "a@x.com")

	checkIn := day(2024, time.May, 6).Add(9 * time.Hour)
	require.NoError(t, store.Create(ctx, &models.Attendance{
		EmployeeID:     employee.ID,
		AttendanceDate: datatypes.Date(day(2024, time.May, 6)),
		CheckIn:        &checkIn,
	}))

	err := store.Create(ctx, &models.Attendance{
		EmployeeID:     employee.ID,
		AttendanceDate: datatypes.Date(day(2024, time.May, 6)),
		CheckIn:        &checkIn,
	})
	assert.ErrorIs(t, err, ErrDuplicate)

	assert.NoError(t, store.Create(ctx, &models.Attendance{
		EmployeeID:     employee.ID,
		AttendanceDate: datatypes.Date(day(2024, time.May, 7)),
	}))

	found, err := store.FindByDate(ctx, employee.ID, day(2024, time.May, 6))
	require.NoError(t, err)
	require.NotNil(t, found.CheckIn)
	assert.True(t, found.CheckIn.Equal(checkIn))

	_, err = store.FindByDate(ctx, employee.ID, day(2024, time.May, 8))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAttendanceCheckInAndOutApplyOnce(t *testing.T) {
	database := newTestDB(t)
	store := &GormAttendanceStore{DB: database}
	ctx := context.Background()
	employee := seedEmployee(t, database, "a@x.com")

	record := &models.Attendance{EmployeeID: employee.ID, AttendanceDate: datatypes.Date(day(2024, time.May, 6))}
	require.NoError(t, store.Create(ctx, record))

	nineAM := day(2024, time.May, 6).Add(9 * time.Hour)
	fiveThirty := day(2024, time.May, 6).Add(17*time.Hour + 30*time.Minute)

	ok, err := store.SetCheckIn(ctx, record.ID, nineAM)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetCheckIn(ctx, record.ID, nineAM.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.SetCheckOut(ctx, record.ID, fiveThirty, 510)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.SetCheckOut(ctx, record.ID, fiveThirty.Add(time.Hour), 570)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := store.FindByDate(ctx, employee.ID, day(2024, time.May, 6))
	require.NoError(t, err)
	require.NotNil(t, stored.CheckIn)
	require.NotNil(t, stored.WorkMinutes)
	assert.True(t, stored.CheckIn.Equal(nineAM))
	assert.Equal(t, 510, *stored.WorkMinutes)
}

func TestAttendanceListFiltersInclusiveNewestFirst(t *testing.T) {
	database := newTestDB(t)
	store := &GormAttendanceStore{DB: database}
	ctx := context.Background()
	alice := seedEmployee(t, database, "alice@x.com")
	bob := seedEmployee(t, database, "bob@x.com")

	for _, d := range []int{1, 2, 3} {
		require.NoError(t, store.Create(ctx, &models.Attendance{
			EmployeeID:     alice.ID,
			AttendanceDate: datatypes.Date(day(2024, time.May, d)),
		}))
	}
	require.NoError(t, store.Create(ctx, &models.Attendance{
		EmployeeID:     bob.ID,
		AttendanceDate: datatypes.Date(day(2024, time.May, 2)),
	}))

	from, to := day(2024, time.May, 1), day(2024, time.May, 2)

	records, err := store.List(ctx, AttendanceFilter{EmployeeID: &alice.ID, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-05-02", time.Time(records[0].AttendanceDate).Format(types.DateLayout))
	assert.Equal(t, "2024-05-01", time.Time(records[1].AttendanceDate).Format(types.DateLayout))

	all, err := store.List(ctx, AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "2024-05-03", time.Time(all[0].AttendanceDate).Format(types.DateLayout))

	sameDay, err := store.List(ctx, AttendanceFilter{From: &to, To: &to})
	require.NoError(t, err)
	assert.Len(t, sameDay, 2)
}
