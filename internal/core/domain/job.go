package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a posting created by an admin. Applicants holds the IDs of users who
// applied; it is a set, so a user appears at most once regardless of how many
// times they apply.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Applicants  []string  `json:"applicants"`
	CreatedAt   time.Time `json:"created_at"`
}
