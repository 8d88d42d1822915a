package stores

import (
	"testing"
	"time"

	"github.com/dayflow-dev/dayflow/db"
	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a migrated in-memory database private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.MigrateDatabase(database))
	return database
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedEmployee(t *testing.T, database *gorm.DB, email string) *models.Employee {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "x", Role: "employee"}
	require.NoError(t, database.Create(user).Error)

	employee := &models.Employee{UserID: user.ID, FullName: "a"}
	require.NoError(t, database.Create(employee).Error)
	return employee
}
