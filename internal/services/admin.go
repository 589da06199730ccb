package services

import (
	"context"
	"math"
	"time"
)

type AdminStats struct {
	TotalUsers     int     `json:"total_users"`
	ActiveUsers    int     `json:"active_users"`
	TotalContent   int     `json:"total_content"`
	CompletionRate float64 `json:"completion_rate"`
}

// ActiveWindowDays is how far back, in calendar days, progress counts a user as active.
const ActiveWindowDays = 7

func (s *Service) AdminStats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	if err := s.DB.GetContext(ctx, &stats.TotalUsers, `SELECT count(*) FROM users`); err != nil {
		return AdminStats{}, WrapError(err, "count users")
	}
	if err := s.DB.GetContext(ctx, &stats.TotalContent, `SELECT count(*) FROM content`); err != nil {
		return AdminStats{}, WrapError(err, "count content")
	}
	if err := s.DB.GetContext(ctx, &stats.ActiveUsers, s.q(`
SELECT count(DISTINCT user_id)
FROM progress
WHERE last_accessed >= ?
`), ActiveSince(s.now()).UTC()); err != nil {
		return AdminStats{}, WrapError(err, "count active users")
	}
	var total, completed int
	if err := s.DB.GetContext(ctx, &total, `SELECT count(*) FROM progress`); err != nil {
		return AdminStats{}, WrapError(err, "count progress")
	}
	if err := s.DB.GetContext(ctx, &completed, s.q(`SELECT count(*) FROM progress WHERE completed = ?`), true); err != nil {
		return AdminStats{}, WrapError(err, "count completed progress")
	}
	stats.CompletionRate = CompletionRate(completed, total)
	return stats, nil
}

// ActiveSince is the start of the calendar day ActiveWindowDays before now.
func ActiveSince(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -ActiveWindowDays)
}

// CompletionRate is completed/total as a percentage rounded to two decimals,
// or 0 when there is nothing to rate.
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}
