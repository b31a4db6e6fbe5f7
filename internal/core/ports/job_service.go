package ports

import (
	"context"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

// CreateJobInput carries the data for a new posting. All fields are required;
// the transport layer validates them before the service is called.
type CreateJobInput struct {
	Title       string
	Description string
	Company     string
	Location    string
}

// JobService defines use-case operations for job postings and applications.
type JobService interface {
	// Create persists a new job with an empty applicant set and broadcasts it
	// to live subscribers. A broadcast failure never fails the create.
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, titleFilter string) ([]*domain.Job, error)
	// Apply records userID as an applicant on the job. Applying twice yields
	// the same final state and succeeds both times.
	Apply(ctx context.Context, jobID, userID string) error
}

// JobBroadcaster delivers a newly created job to live subscribers.
// Delivery is best effort; implementations must never block the caller on a
// slow or broken subscriber.
type JobBroadcaster interface {
	BroadcastNewJob(job *domain.Job)
}
