package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportel/job-board-api/internal/api/metrics"
	"github.com/jobportel/job-board-api/internal/core/domain"
	"github.com/jobportel/job-board-api/internal/core/ports"
)

// JobService implements job posting, browsing and the application workflow.
type JobService struct {
	repo        ports.JobRepository
	broadcaster ports.JobBroadcaster
	logger      zerolog.Logger
}

func NewJobService(repo ports.JobRepository, broadcaster ports.JobBroadcaster, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, broadcaster: broadcaster, logger: logger}
}

// Create persists a new job and fans it out to live subscribers. The fan-out
// is fire-and-forget: once the job is stored the create has succeeded, no
// matter what happens on the real-time channel.
func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	job := &domain.Job{
		Title:       input.Title,
		Description: input.Description,
		Company:     input.Company,
		Location:    input.Location,
		Applicants:  []string{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Str("title", input.Title).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("title", job.Title).Msg("job created")
	metrics.JobsCreatedTotal.Inc()

	if s.broadcaster != nil {
		s.broadcaster.BroadcastNewJob(job)
	}

	return job, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, titleFilter string) ([]*domain.Job, error) {
	return s.repo.List(ctx, titleFilter)
}

// Apply attaches userID to the job's applicant set. The user identity comes
// from the verified token claims, never from the request body. The update is
// a single atomic add-to-set, so repeated applies are idempotent and
// concurrent applies by distinct users are all recorded.
func (s *JobService) Apply(ctx context.Context, jobID, userID string) error {
	if err := s.repo.AddApplicant(ctx, jobID, userID); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			metrics.ApplicationsTotal.WithLabelValues("not_found").Inc()
		} else {
			metrics.ApplicationsTotal.WithLabelValues("error").Inc()
			s.logger.Error().Err(err).Str("job_id", jobID).Str("user_id", userID).Msg("failed to record application")
		}
		return err
	}

	s.logger.Info().Str("job_id", jobID).Str("user_id", userID).Msg("application recorded")
	metrics.ApplicationsTotal.WithLabelValues("ok").Inc()
	return nil
}
