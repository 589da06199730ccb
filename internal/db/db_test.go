package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver(t *testing.T) {
	assert.Equal(t, DriverPostgres, Driver("postgres://u:p@localhost:5432/app"))
	assert.Equal(t, DriverPostgres, Driver("PostgreSQL://localhost/app"))
	assert.Equal(t, DriverSQLite, Driver("cata_cuti.db"))
	assert.Equal(t, DriverSQLite, Driver("sqlite:///tmp/app.db"))
}

func TestSQLiteSource(t *testing.T) {
	assert.Equal(t, "app.db?_busy_timeout=5000&_foreign_keys=off", sqliteSource("app.db"))
	assert.Equal(t, "/tmp/app.db?_busy_timeout=5000&_foreign_keys=off", sqliteSource("sqlite:///tmp/app.db"))
	assert.Equal(t, "file:x.db?mode=memory", sqliteSource("file:x.db?mode=memory"))
}

func TestOpenSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	database, err := Open(path)
	require.NoError(t, err)
	defer database.Close()
	assert.Equal(t, DriverSQLite, database.DriverName())

	var one int
	require.NoError(t, database.Get(&one, `SELECT 1`))
	assert.Equal(t, 1, one)
	assert.FileExists(t, path)
}
