package services

import (
	"context"
	"strings"
	"time"

	"catacuti-backend-go/internal/models"
)

type ProgressInput struct {
	UserID    int64
	Subject   string
	Chapter   string
	Score     int
	Completed bool
}

type ProgressEntry struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Subject      string    `json:"subject"`
	Chapter      string    `json:"chapter"`
	Score        int       `json:"score"`
	Completed    bool      `json:"completed"`
	LastAccessed time.Time `json:"last_accessed"`
}

// RecordProgress appends one attempt. Earlier rows for the same chapter are
// left untouched.
func (s *Service) RecordProgress(ctx context.Context, in ProgressInput) (int64, error) {
	if in.UserID <= 0 {
		return 0, ErrBadRequest("User ID is required")
	}
	subject := strings.TrimSpace(in.Subject)
	chapter := strings.TrimSpace(in.Chapter)
	if subject == "" || chapter == "" {
		return 0, ErrBadRequest("Subject and chapter are required")
	}
	var id int64
	err := s.DB.QueryRowxContext(ctx, s.q(`
INSERT INTO progress (user_id, subject, chapter, score, completed, last_accessed)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id
`), in.UserID, subject, chapter, in.Score, in.Completed, s.now().UTC()).Scan(&id)
	if err != nil {
		return 0, WrapError(err, "save progress")
	}
	return id, nil
}

func (s *Service) GetProgress(ctx context.Context, userID int64) ([]ProgressEntry, error) {
	rows := []models.Progress{}
	if err := s.DB.SelectContext(ctx, &rows, s.q(`
SELECT id, user_id, subject, chapter, score, completed, last_accessed
FROM progress
WHERE user_id = ?
ORDER BY last_accessed DESC, id DESC
`), userID); err != nil {
		return nil, WrapError(err, "list progress")
	}
	items := make([]ProgressEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, ProgressEntry{
			ID:           row.ID,
			UserID:       row.UserID,
			Subject:      row.Subject,
			Chapter:      row.Chapter,
			Score:        row.Score,
			Completed:    row.Completed,
			LastAccessed: row.LastAccessed,
		})
	}
	return items, nil
}
