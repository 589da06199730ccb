package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"catacuti-backend-go/internal/db"
	"catacuti-backend-go/internal/migrations"

	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func fastHasher() Argon2Hasher {
	return Argon2Hasher{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}
}

func newTestService(t *testing.T) (*Service, *testClock) {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Apply(context.Background(), database))

	clock := &testClock{now: time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)}
	svc := New(database, fastHasher(), nil, time.UTC)
	svc.Now = clock.Now
	return svc, clock
}

func requireServiceError(t *testing.T, err error, status int, message string) {
	t.Helper()
	require.Error(t, err)
	gotStatus, gotMessage := StatusOf(err)
	require.Equal(t, status, gotStatus)
	require.Equal(t, message, gotMessage)
}
