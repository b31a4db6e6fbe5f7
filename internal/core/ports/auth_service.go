package ports

import (
	"context"
	"time"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Password    string
	Skills      []string
	DOB         time.Time
	Role        string // defaults to "user" when empty
	ResumeFile  string // stored filename of the uploaded resume, if any
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed token alongside the
	// authenticated user. Any mismatch, including an unknown email, yields
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
