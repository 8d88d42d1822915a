package db

import (
	"testing"

	"github.com/dayflow-dev/dayflow/internal/config"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Error, parseLogLevel("error"))
	assert.Equal(t, logger.Info, parseLogLevel("info"))
	assert.Equal(t, logger.Warn, parseLogLevel("warn"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}

func TestConnectDatabaseRejectsUnknownDriver(t *testing.T) {
	_, err := ConnectDatabase(config.DatabaseConfig{Driver: "oracle", DSN: "x"})
	assert.EqualError(t, err, "unsupported database driver: oracle")
}

func TestMySQLDSNEnablesParseTime(t *testing.T) {
	tests := []string{
		"dayflow:secret@tcp(localhost:3306)/dayflow",
		"dayflow:secret@tcp(localhost:3306)/dayflow?charset=utf8mb4",
		"dayflow:secret@tcp(localhost:3306)/dayflow?parseTime=false",
	}

	for _, dsn := range tests {
		t.Run(dsn, func(t *testing.T) {
			got, err := mysqlDSN(dsn)
			require.NoError(t, err)

			parsed, err := mysqldriver.ParseDSN(got)
			require.NoError(t, err)
			assert.True(t, parsed.ParseTime)
			assert.Equal(t, "dayflow", parsed.DBName)
			assert.Equal(t, "localhost:3306", parsed.Addr)
		})
	}
}

func TestConnectDatabaseRejectsMalformedMySQLDSN(t *testing.T) {
	_, err := ConnectDatabase(config.DatabaseConfig{Driver: "mysql", DSN: "not a dsn"})
	assert.ErrorContains(t, err, "invalid mysql DATABASE_URL")
}
