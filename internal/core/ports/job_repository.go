package ports

import (
	"context"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	// FindByID retrieves a job by its identifier. Returns domain.ErrJobNotFound
	// when no job matches (a malformed identifier counts as not found).
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns all jobs whose title contains titleFilter as a
	// case-insensitive substring. An empty filter matches everything.
	List(ctx context.Context, titleFilter string) ([]*domain.Job, error)
	// AddApplicant records userID on the job's applicant set in a single
	// atomic update. Adding a user who already applied is a no-op; two
	// concurrent calls for different users both take effect. Returns
	// domain.ErrJobNotFound when the job does not exist.
	AddApplicant(ctx context.Context, jobID, userID string) error
}
