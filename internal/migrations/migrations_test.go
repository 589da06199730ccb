package migrations

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"catacuti-backend-go/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestApplySkipsRecordedVersions(t *testing.T) {
	database, mock := newMock(t)
	fsys := fstest.MapFS{"sqlite/V1__init.sql": {Data: []byte("CREATE TABLE a (id INT);")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("1"))

	require.NoError(t, apply(context.Background(), database, fsys, "sqlite"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRunsPendingMigrationInTransaction(t *testing.T) {
	database, mock := newMock(t)
	fsys := fstest.MapFS{"sqlite/V1__init.sql": {Data: []byte("CREATE TABLE a (id INT);\nCREATE TABLE b (id INT);")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("1", "V1__init.sql").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, apply(context.Background(), database, fsys, "sqlite"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	database, mock := newMock(t)
	fsys := fstest.MapFS{"sqlite/V1__init.sql": {Data: []byte("CREATE TABLE a (id INT);")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := apply(context.Background(), database, fsys, "sqlite")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply V1__init.sql")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListMigrationsOrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"sqlite/V10__later.sql": {Data: []byte("SELECT 1")},
		"sqlite/V2__second.sql": {Data: []byte("SELECT 1")},
		"sqlite/V1__first.sql":  {Data: []byte("SELECT 1")},
		"sqlite/README.md":      {Data: []byte("docs")},
		"sqlite/notes.sql":      {Data: []byte("SELECT 1")},
	}
	migs, err := listMigrations(fsys, "sqlite")
	require.NoError(t, err)
	names := make([]string, 0, len(migs))
	for _, mig := range migs {
		names = append(names, mig.Name)
	}
	assert.Equal(t, []string{"V1__first.sql", "V2__second.sql", "V10__later.sql"}, names)
}

func TestDir(t *testing.T) {
	assert.Equal(t, "postgres", Dir(db.DriverPostgres))
	assert.Equal(t, "sqlite", Dir(db.DriverSQLite))
}

func TestApplySQLiteIsIdempotent(t *testing.T) {
	database, err := db.Open(filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	defer database.Close()

	ctx := context.Background()
	require.NoError(t, Apply(ctx, database))
	require.NoError(t, Apply(ctx, database))

	for _, table := range []string{"users", "content", "progress", "streaks"} {
		var count int
		require.NoError(t, database.Get(&count, `SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table))
		assert.Equal(t, 1, count, table)
	}
	var versions int
	require.NoError(t, database.Get(&versions, `SELECT count(*) FROM schema_migrations`))
	assert.Equal(t, 1, versions)
}
