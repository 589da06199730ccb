package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"catacuti-backend-go/internal/db"
	"catacuti-backend-go/internal/models"
)

type ContentFilter struct {
	Subject string
	Type    string
	Class   string
}

type ContentSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Subject     string    `json:"subject"`
	Chapter     *string   `json:"chapter"`
	ContentType string    `json:"content_type"`
	Difficulty  *string   `json:"difficulty"`
	Classes     *string   `json:"classes"`
	VideoURL    *string   `json:"video_url"`
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContentDetail struct {
	ContentSummary
	Files []any `json:"files"`
}

const contentColumns = `id, title, description, subject, chapter, content_type, difficulty, classes, video_url, notes, files, created_at`

func summaryOf(row models.Content) ContentSummary {
	return ContentSummary{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Subject:     row.Subject,
		Chapter:     row.Chapter,
		ContentType: row.ContentType,
		Difficulty:  row.Difficulty,
		Classes:     row.Classes,
		VideoURL:    row.VideoURL,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt,
	}
}

func activeFilter(value string) bool {
	return value != "" && value != "all"
}

// containsClause matches rows whose column holds the bound value as a literal,
// case-sensitive substring on both dialects.
func containsClause(driver, column string) string {
	if driver == db.DriverPostgres {
		return `strpos(` + column + `, ?) > 0`
	}
	return `instr(` + column + `, ?) > 0`
}

// ListContent returns content matching every active filter, newest first.
// The class filter is a substring match against the comma-joined classes.
func (s *Service) ListContent(ctx context.Context, filter ContentFilter) ([]ContentSummary, error) {
	query := `SELECT ` + contentColumns + ` FROM content WHERE 1=1`
	args := []interface{}{}
	if subject := strings.TrimSpace(filter.Subject); activeFilter(subject) {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	if contentType := strings.TrimSpace(filter.Type); activeFilter(contentType) {
		query += ` AND content_type = ?`
		args = append(args, contentType)
	}
	if class := strings.TrimSpace(filter.Class); class != "" {
		query += ` AND ` + containsClause(s.DB.DriverName(), "classes")
		args = append(args, class)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows := []models.Content{}
	if err := s.DB.SelectContext(ctx, &rows, s.q(query), args...); err != nil {
		return nil, WrapError(err, "list content")
	}
	items := make([]ContentSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, summaryOf(row))
	}
	return items, nil
}

func (s *Service) GetContent(ctx context.Context, id int64) (ContentDetail, error) {
	var row models.Content
	err := s.DB.GetContext(ctx, &row, s.q(`SELECT `+contentColumns+` FROM content WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return ContentDetail{}, ErrNotFound("Content not found")
	}
	if err != nil {
		return ContentDetail{}, WrapError(err, "load content")
	}
	files, err := DecodeFiles(row.Files)
	if err != nil {
		return ContentDetail{}, WrapError(err, "decode files")
	}
	return ContentDetail{ContentSummary: summaryOf(row), Files: files}, nil
}

// DecodeFiles turns the stored JSON file list into values, treating a
// missing or blank column as no files.
func DecodeFiles(raw *string) ([]any, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []any{}, nil
	}
	var files []any
	if err := json.Unmarshal([]byte(*raw), &files); err != nil {
		return nil, err
	}
	if files == nil {
		files = []any{}
	}
	return files, nil
}
