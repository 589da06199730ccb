package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"catacuti-backend-go/internal/models"
	"catacuti-backend-go/internal/streak"
)

type AuthRequest struct {
	Email    string
	Password string
	IsSignup bool
	Name     string
	Class    string
	Gender   string
	School   string
}

// UserProfile is the public view of a user. It never carries the password.
type UserProfile struct {
	ID     int64   `json:"id"`
	Email  string  `json:"email"`
	Name   *string `json:"name"`
	Class  *string `json:"class"`
	School *string `json:"school"`
	Role   string  `json:"role"`
}

type AdminUser struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Class     *string   `json:"class"`
	School    *string   `json:"school"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

const userColumns = `id, email, password, name, user_class, gender, school, role, created_at`

func profileOf(user models.User) UserProfile {
	return UserProfile{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Class:  user.UserClass,
		School: user.School,
		Role:   user.Role,
	}
}

// Authenticate signs a user up or logs them in. A successful login also
// advances the user's streak; streak failures never fail the login.
func (s *Service) Authenticate(ctx context.Context, req AuthRequest) (UserProfile, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return UserProfile{}, ErrBadRequest("Email and password are required")
	}
	if req.IsSignup {
		return s.signup(ctx, email, req)
	}
	return s.login(ctx, email, req.Password)
}

func (s *Service) signup(ctx context.Context, email string, req AuthRequest) (UserProfile, error) {
	var count int
	if err := s.DB.GetContext(ctx, &count, s.q(`SELECT count(*) FROM users WHERE email = ?`), email); err != nil {
		return UserProfile{}, WrapError(err, "lookup user")
	}
	if count > 0 {
		return UserProfile{}, ErrConflict("User already exists")
	}
	hash, err := s.Passwords.Hash(req.Password)
	if err != nil {
		return UserProfile{}, WrapError(err, "hash password")
	}
	now := s.now()

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		return UserProfile{}, WrapError(err, "begin signup")
	}
	defer func() { _ = tx.Rollback() }()

	var userID int64
	err = tx.QueryRowxContext(ctx, tx.Rebind(`
INSERT INTO users (email, password, name, user_class, gender, school, role, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`), email, hash, req.Name, req.Class, req.Gender, req.School, models.RoleStudent, now.UTC()).Scan(&userID)
	if err != nil {
		return UserProfile{}, WrapError(err, "create user")
	}
	state := streak.Next(nil, now)
	if _, err := tx.ExecContext(ctx, tx.Rebind(`
INSERT INTO streaks (user_id, current_streak, longest_streak, last_activity)
VALUES (?, ?, ?, ?)
`), userID, state.Current, state.Longest, streak.Format(state.LastActivity)); err != nil {
		return UserProfile{}, WrapError(err, "create streak")
	}
	if err := tx.Commit(); err != nil {
		return UserProfile{}, WrapError(err, "commit signup")
	}

	user, err := s.userByID(ctx, userID)
	if err != nil {
		return UserProfile{}, err
	}
	s.Log.Info("user registered", "user_id", userID)
	return profileOf(user), nil
}

func (s *Service) login(ctx context.Context, email, password string) (UserProfile, error) {
	var user models.User
	err := s.DB.GetContext(ctx, &user, s.q(`SELECT `+userColumns+` FROM users WHERE email = ?`), email)
	if errors.Is(err, sql.ErrNoRows) {
		return UserProfile{}, ErrUnauthorized("Invalid credentials")
	}
	if err != nil {
		return UserProfile{}, WrapError(err, "lookup user")
	}
	if !s.Passwords.Verify(password, user.Password) {
		return UserProfile{}, ErrUnauthorized("Invalid credentials")
	}
	s.touchStreak(ctx, user.ID)
	return profileOf(user), nil
}

func (s *Service) userByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	if err := s.DB.GetContext(ctx, &user, s.q(`SELECT `+userColumns+` FROM users WHERE id = ?`), id); err != nil {
		return models.User{}, WrapError(err, "load user")
	}
	return user, nil
}

// AdminListUsers returns every user, newest first, without passwords.
func (s *Service) AdminListUsers(ctx context.Context) ([]AdminUser, error) {
	rows := []models.User{}
	if err := s.DB.SelectContext(ctx, &rows, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, WrapError(err, "list users")
	}
	users := make([]AdminUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, AdminUser{
			ID:        row.ID,
			Email:     row.Email,
			Name:      row.Name,
			Class:     row.UserClass,
			School:    row.School,
			Role:      row.Role,
			CreatedAt: row.CreatedAt,
		})
	}
	return users, nil
}
