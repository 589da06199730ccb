package services

import (
	"time"

	"catacuti-backend-go/internal/platform/logger"

	"github.com/jmoiron/sqlx"
)

// Service runs the domain operations of the API over one database handle.
// Each call uses the caller's context and holds no state between requests.
type Service struct {
	DB        *sqlx.DB
	Passwords PasswordHasher
	Log       *logger.Logger
	Location  *time.Location
	Now       func() time.Time
}

func New(db *sqlx.DB, passwords PasswordHasher, log *logger.Logger, loc *time.Location) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		DB:        db,
		Passwords: passwords,
		Log:       log,
		Location:  loc,
		Now:       time.Now,
	}
}

// now is the wall-clock time in the application timezone.
func (s *Service) now() time.Time {
	return s.Now().In(s.Location)
}

func (s *Service) q(query string) string {
	return s.DB.Rebind(query)
}
