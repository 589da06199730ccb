package services

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"catacuti-backend-go/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(items []ContentSummary) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func TestListContentFilters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeedData(ctx))

	all, err := svc.ListContent(ctx, ContentFilter{Subject: "all", Type: "all"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Physics Video: Motion", "Algebra Quiz", "Science Fundamentals", "Mathematics Basics"}, titles(all))

	maths, err := svc.ListContent(ctx, ContentFilter{Subject: "Mathematics"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Algebra Quiz", "Mathematics Basics"}, titles(maths))

	quizzes, err := svc.ListContent(ctx, ContentFilter{Subject: "Mathematics", Type: "quiz"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Algebra Quiz"}, titles(quizzes))

	none, err := svc.ListContent(ctx, ContentFilter{Subject: "History"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestListContentClassIsSubstringMatch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeedData(ctx))

	items, err := svc.ListContent(ctx, ContentFilter{Class: "9th Grade"})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		require.NotNil(t, item.Classes)
		assert.Contains(t, *item.Classes, "9th Grade")
	}
	assert.ElementsMatch(t, []string{"Algebra Quiz", "Physics Video: Motion"}, titles(items))

	all, err := svc.ListContent(ctx, ContentFilter{})
	require.NoError(t, err)
	matched := 0
	for _, item := range all {
		if item.Classes != nil && strings.Contains(*item.Classes, "9th Grade") {
			matched++
		}
	}
	assert.Equal(t, matched, len(items))
}

func TestListContentClassIsLiteralAndCaseSensitive(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeedData(ctx))

	for _, class := range []string{"%", "_th Grade", "9TH GRADE", "6th%Grade", `\`} {
		items, err := svc.ListContent(ctx, ContentFilter{Class: class})
		require.NoError(t, err, class)
		assert.Empty(t, items, class)
	}

	items, err := svc.ListContent(ctx, ContentFilter{Class: "Grade,7th"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Mathematics Basics", "Science Fundamentals"}, titles(items))
}

func TestContainsClause(t *testing.T) {
	assert.Equal(t, "instr(classes, ?) > 0", containsClause(db.DriverSQLite, "classes"))
	assert.Equal(t, "strpos(classes, ?) > 0", containsClause(db.DriverPostgres, "classes"))
}

func TestGetContentMissingIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.GetContent(context.Background(), 999999)
	requireServiceError(t, err, http.StatusNotFound, "Content not found")
}

func TestGetContentDecodesFiles(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.EnsureSeedData(ctx))

	var id int64
	require.NoError(t, svc.DB.QueryRowx(`
INSERT INTO content (title, subject, content_type, files, created_at)
VALUES ('Worksheet', 'Mathematics', 'notes', '[{"name":"sheet.pdf","size":12}]', ?)
RETURNING id`, time.Now().UTC()).Scan(&id))

	detail, err := svc.GetContent(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Worksheet", detail.Title)
	require.Len(t, detail.Files, 1)
	file, ok := detail.Files[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sheet.pdf", file["name"])
	require.NotNil(t, detail.Difficulty)
	assert.Equal(t, "beginner", *detail.Difficulty)

	seeded, err := svc.GetContent(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, seeded.Files)
	assert.Empty(t, seeded.Files)
}

func TestDecodeFiles(t *testing.T) {
	blank := "  "
	files, err := DecodeFiles(&blank)
	require.NoError(t, err)
	assert.Equal(t, []any{}, files)

	null := "null"
	files, err = DecodeFiles(&null)
	require.NoError(t, err)
	assert.Equal(t, []any{}, files)

	broken := "[{"
	_, err = DecodeFiles(&broken)
	assert.Error(t, err)
}
