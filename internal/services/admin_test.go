package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0.0, CompletionRate(0, 0))
	assert.Equal(t, 0.0, CompletionRate(0, 5))
	assert.Equal(t, 100.0, CompletionRate(4, 4))
	assert.Equal(t, 33.33, CompletionRate(1, 3))
	assert.Equal(t, 66.67, CompletionRate(2, 3))
	assert.Equal(t, 14.29, CompletionRate(1, 7))
}

func TestActiveSince(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), ActiveSince(now))
}

func TestAdminStatsWithoutProgress(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeedData(ctx))

	stats, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, AdminStats{TotalUsers: 2, TotalContent: 4}, stats)
}

func TestAdminStatsCountsActivityAndCompletion(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeedData(ctx))

	// user 3 was last active ten days ago
	_, err := svc.RecordProgress(ctx, ProgressInput{UserID: 3, Subject: "Physics", Chapter: "Motion"})
	require.NoError(t, err)
	clock.Advance(10 * 24 * time.Hour)

	_, err = svc.RecordProgress(ctx, ProgressInput{UserID: 1, Subject: "Science", Chapter: "Intro", Completed: true})
	require.NoError(t, err)
	_, err = svc.RecordProgress(ctx, ProgressInput{UserID: 1, Subject: "Science", Chapter: "Intro"})
	require.NoError(t, err)
	_, err = svc.RecordProgress(ctx, ProgressInput{UserID: 2, Subject: "Mathematics", Chapter: "Algebra"})
	require.NoError(t, err)

	stats, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 4, stats.TotalContent)
	assert.Equal(t, 2, stats.ActiveUsers)
	assert.Equal(t, 25.0, stats.CompletionRate)
}

func TestAdminStatsWindowIncludesSeventhDay(t *testing.T) {
	svc, clock := newTestService(t)
	ctx := context.Background()
	_, err := svc.RecordProgress(ctx, ProgressInput{UserID: 5, Subject: "Physics", Chapter: "Motion"})
	require.NoError(t, err)
	clock.Advance(7*24*time.Hour + 8*time.Hour)

	stats, err := svc.AdminStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ActiveUsers)
}

func TestAdminStatsStorageFailureIsInternal(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	svc := New(sqlx.NewDb(mockDB, "sqlmock"), fastHasher(), nil, time.UTC)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM users").WillReturnError(errors.New("database is locked"))

	_, err = svc.AdminStats(context.Background())
	status, message := StatusOf(err)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "count users: database is locked", message)
	require.NoError(t, mock.ExpectationsWereMet())
}
