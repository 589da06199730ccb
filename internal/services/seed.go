package services

import (
	"context"

	"catacuti-backend-go/internal/models"
)

type seedUser struct {
	Email    string
	Password string
	Name     string
	Class    string
	Role     string
}

type seedContent struct {
	Title       string
	Description string
	Subject     string
	Chapter     string
	ContentType string
	Difficulty  string
	Classes     string
	VideoURL    *string
	Notes       *string
}

var seedUsers = []seedUser{
	{Email: "admin@catacuti.com", Password: "admin123", Name: "Admin User", Class: "Administrator", Role: models.RoleAdmin},
	{Email: "student@catacuti.com", Password: "student123", Name: "Test Student", Class: "10th Grade", Role: models.RoleStudent},
}

func strPtr(value string) *string {
	return &value
}

var seedContents = []seedContent{
	{
		Title: "Mathematics Basics", Description: "Introduction to basic math concepts",
		Subject: "Mathematics", Chapter: "Chapter 1", ContentType: "notes", Difficulty: "beginner",
		Classes: "6th Grade,7th Grade", Notes: strPtr("# Welcome to Mathematics!"),
	},
	{
		Title: "Science Fundamentals", Description: "Learn basic science principles",
		Subject: "Science", Chapter: "Introduction", ContentType: "notes", Difficulty: "beginner",
		Classes: "6th Grade,7th Grade,8th Grade", Notes: strPtr("# Science Basics"),
	},
	{
		Title: "Algebra Quiz", Description: "Test your algebra knowledge",
		Subject: "Mathematics", Chapter: "Algebra", ContentType: "quiz", Difficulty: "intermediate",
		Classes: "8th Grade,9th Grade,10th Grade",
	},
	{
		Title: "Physics Video: Motion", Description: "Understanding motion and forces",
		Subject: "Physics", Chapter: "Motion", ContentType: "video", Difficulty: "advanced",
		Classes: "9th Grade,10th Grade", VideoURL: strPtr("https://www.youtube.com/embed/dQw4w9WgXcQ"),
	},
}

// EnsureSeedData inserts the demo accounts when there are no users and the
// sample lessons when there is no content. Running it again is a no-op.
func (s *Service) EnsureSeedData(ctx context.Context) error {
	var users int
	if err := s.DB.GetContext(ctx, &users, `SELECT count(*) FROM users`); err != nil {
		return WrapError(err, "count users")
	}
	if users == 0 {
		if err := s.seedUsers(ctx); err != nil {
			return err
		}
	}
	var contents int
	if err := s.DB.GetContext(ctx, &contents, `SELECT count(*) FROM content`); err != nil {
		return WrapError(err, "count content")
	}
	if contents == 0 {
		if err := s.seedContent(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) seedUsers(ctx context.Context) error {
	now := s.now().UTC()
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, user := range seedUsers {
		hash, err := s.Passwords.Hash(user.Password)
		if err != nil {
			return WrapError(err, "hash seed password")
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
INSERT INTO users (email, password, name, user_class, role, created_at)
VALUES (?, ?, ?, ?, ?, ?)
`), user.Email, hash, user.Name, user.Class, user.Role, now); err != nil {
			return WrapError(err, "seed user "+user.Email)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.Log.Info("seeded users", "count", len(seedUsers))
	return nil
}

func (s *Service) seedContent(ctx context.Context) error {
	now := s.now().UTC()
	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, item := range seedContents {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`
INSERT INTO content (title, description, subject, chapter, content_type, difficulty, classes, video_url, notes, files, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NULL, ?)
`), item.Title, item.Description, item.Subject, item.Chapter, item.ContentType, item.Difficulty, item.Classes, item.VideoURL, item.Notes, now); err != nil {
			return WrapError(err, "seed content "+item.Title)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.Log.Info("seeded content", "count", len(seedContents))
	return nil
}
