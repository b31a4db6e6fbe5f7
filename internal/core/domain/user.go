package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrResumeNotFound = errors.New("resume not found")

// ValidRole reports whether role is one of the recognised user roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models a registered account. Username and email are unique across all
// users; uniqueness is enforced by the credential store's indexes.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Skills       []string  `json:"skills"`
	ResumeFile   string    `json:"resume_file,omitempty"`
	DOB          time.Time `json:"dob"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
