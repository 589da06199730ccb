package models

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// DefaultClasses is the grade list content targets when none is given.
const DefaultClasses = "6th Grade,7th Grade,8th Grade,9th Grade,10th Grade"

type User struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Name      *string   `db:"name"`
	UserClass *string   `db:"user_class"`
	Gender    *string   `db:"gender"`
	School    *string   `db:"school"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Content struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Subject     string    `db:"subject"`
	Chapter     *string   `db:"chapter"`
	ContentType string    `db:"content_type"`
	Difficulty  *string   `db:"difficulty"`
	Classes     *string   `db:"classes"`
	VideoURL    *string   `db:"video_url"`
	Notes       *string   `db:"notes"`
	Files       *string   `db:"files"`
	CreatedAt   time.Time `db:"created_at"`
}

// Progress is one attempt; rows are appended, never merged.
type Progress struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	Subject      string    `db:"subject"`
	Chapter      string    `db:"chapter"`
	Score        int       `db:"score"`
	Completed    bool      `db:"completed"`
	LastAccessed time.Time `db:"last_accessed"`
}

type Streak struct {
	ID            int64   `db:"id"`
	UserID        int64   `db:"user_id"`
	CurrentStreak int     `db:"current_streak"`
	LongestStreak int     `db:"longest_streak"`
	LastActivity  *string `db:"last_activity"`
}
