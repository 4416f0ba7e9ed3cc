package repository

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a GORM connection backed by sqlmock. Expectations use
// regexp matching so incidental quoting differences don't break tests.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	require.NoError(t, mock.ExpectationsWereMet())
}

var hospitalColumns = []string{
	"id", "hospital_name", "total_beds", "available_beds", "oxygen_available",
	"address", "contact_number", "icu_beds", "ventilators",
}

var locationColumns = []string{"id", "hospital_id", "address", "city", "state", "zip_code"}

func hospitalRow() *sqlmock.Rows {
	return sqlmock.NewRows(hospitalColumns).
		AddRow(1, "City General Hospital", 100, 25, true,
			"123 Main St, Springfield", "+1-555-1234", 10, 5)
}
