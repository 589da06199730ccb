package services

import (
	"context"
	"database/sql"
	"errors"

	"catacuti-backend-go/internal/models"
	"catacuti-backend-go/internal/streak"
)

type StreakSnapshot struct {
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	LastActivity  string `json:"last_activity"`
}

// GetStreak reports the stored streak, or a zero snapshot when the user has
// none. It never writes.
func (s *Service) GetStreak(ctx context.Context, userID int64) (StreakSnapshot, error) {
	row, err := s.streakRow(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		zero := streak.Zero(s.now())
		return StreakSnapshot{LastActivity: streak.Format(zero.LastActivity)}, nil
	}
	if err != nil {
		return StreakSnapshot{}, WrapError(err, "load streak")
	}
	snapshot := StreakSnapshot{
		CurrentStreak: row.CurrentStreak,
		LongestStreak: row.LongestStreak,
	}
	if row.LastActivity != nil {
		snapshot.LastActivity = *row.LastActivity
	}
	return snapshot, nil
}

func (s *Service) streakRow(ctx context.Context, userID int64) (models.Streak, error) {
	var row models.Streak
	err := s.DB.GetContext(ctx, &row, s.q(`
SELECT id, user_id, current_streak, longest_streak, last_activity
FROM streaks
WHERE user_id = ?
`), userID)
	return row, err
}

func (s *Service) touchStreak(ctx context.Context, userID int64) {
	if err := s.updateStreak(ctx, userID); err != nil {
		s.Log.Error("streak update failed", "user_id", userID, "error", err)
	}
}

func (s *Service) updateStreak(ctx context.Context, userID int64) error {
	now := s.now()
	row, err := s.streakRow(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		state := streak.Next(nil, now)
		_, err = s.DB.ExecContext(ctx, s.q(`
INSERT INTO streaks (user_id, current_streak, longest_streak, last_activity)
VALUES (?, ?, ?, ?)
`), userID, state.Current, state.Longest, streak.Format(state.LastActivity))
		return err
	}
	if err != nil {
		return err
	}
	prev := &streak.Record{Current: row.CurrentStreak, Longest: row.LongestStreak}
	if row.LastActivity != nil {
		prev.LastActivity = *row.LastActivity
	}
	if _, err := streak.ParseActivity(prev.LastActivity, now.Location()); err != nil {
		s.Log.Warn("streak last activity unreadable, counting as today", "user_id", userID, "value", prev.LastActivity)
	}
	state := streak.Next(prev, now)
	_, err = s.DB.ExecContext(ctx, s.q(`
UPDATE streaks
SET current_streak = ?, longest_streak = ?, last_activity = ?
WHERE user_id = ?
`), state.Current, state.Longest, streak.Format(state.LastActivity), userID)
	return err
}
