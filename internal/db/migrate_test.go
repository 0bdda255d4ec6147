package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateIsRepeatable(t *testing.T) {
	gdb := openTestDB(t)

	// A second run must be a no-op, the server migrates on every start
	require.NoError(t, Migrate(gdb))
}

func TestMigrationsReversible(t *testing.T) {
	gdb := openTestDB(t)

	require.NoError(t, Rollback(gdb))

	var count int64
	err := gdb.Raw(
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('cars', 'employees', 'users', 'insurances')",
	).Scan(&count).Error
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestUniqueViolationDetection(t *testing.T) {
	gdb := openTestDB(t)

	insert := func() error {
		return gdb.Exec("INSERT INTO users (username, password) VALUES ('dup', 'x')").Error
	}

	require.NoError(t, insert())
	err := insert()
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestUniqueViolationIgnoresOtherErrors(t *testing.T) {
	gdb := openTestDB(t)

	err := gdb.Exec("INSERT INTO users (username) VALUES ('nopassword')").Error
	require.Error(t, err, "password is NOT NULL")
	assert.False(t, IsUniqueViolation(err))
}
