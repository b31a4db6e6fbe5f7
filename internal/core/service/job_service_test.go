package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobportel/job-board-api/internal/core/domain"
	"github.com/jobportel/job-board-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository with set semantics for applicants
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	mu        sync.Mutex
	jobs      map[string]*domain.Job
	nextID    int
	createErr error
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	job.ID = fmt.Sprintf("job-%d", r.nextID)
	clone := *job
	r.jobs[job.ID] = &clone
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJobRepo) List(_ context.Context, titleFilter string) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Job{}
	for _, j := range r.jobs {
		if titleFilter != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(titleFilter)) {
			continue
		}
		clone := *j
		out = append(out, &clone)
	}
	return out, nil
}

// AddApplicant mirrors the real repo's atomic add-to-set update.
func (r *stubJobRepo) AddApplicant(_ context.Context, jobID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return domain.ErrJobNotFound
	}
	for _, a := range j.Applicants {
		if a == userID {
			return nil
		}
	}
	j.Applicants = append(j.Applicants, userID)
	return nil
}

type stubBroadcaster struct {
	mu   sync.Mutex
	jobs []*domain.Job
}

func (b *stubBroadcaster) BroadcastNewJob(job *domain.Job) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jobs = append(b.jobs, job)
}

func validInput() ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:       "Software Engineer",
		Description: "Build things",
		Company:     "Acme",
		Location:    "Remote",
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestJobService_Create_BroadcastsOnce(t *testing.T) {
	repo := newStubJobRepo()
	bc := &stubBroadcaster{}
	svc := NewJobService(repo, bc, zerolog.Nop())

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if job.ID == "" {
		t.Fatalf("expected persisted job to carry an ID")
	}
	if len(job.Applicants) != 0 {
		t.Fatalf("expected empty applicant set, got %v", job.Applicants)
	}
	if len(bc.jobs) != 1 {
		t.Fatalf("expected exactly one broadcast, got %d", len(bc.jobs))
	}
	if bc.jobs[0].ID != job.ID {
		t.Fatalf("broadcast carried wrong job: %s != %s", bc.jobs[0].ID, job.ID)
	}
}

func TestJobService_Create_StorageFailureNoBroadcast(t *testing.T) {
	repo := newStubJobRepo()
	repo.createErr = errors.New("boom")
	bc := &stubBroadcaster{}
	svc := NewJobService(repo, bc, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validInput()); err == nil {
		t.Fatalf("expected error from storage failure")
	}
	if len(bc.jobs) != 0 {
		t.Fatalf("no broadcast expected on failed create, got %d", len(bc.jobs))
	}
}

func TestJobService_Create_NilBroadcaster(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("create must succeed without a broadcaster: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Apply
// ---------------------------------------------------------------------------

func TestJobService_Apply_UnknownJob(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, zerolog.Nop())

	if err := svc.Apply(context.Background(), "missing", "user-1"); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestJobService_Apply_Idempotent(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, nil, zerolog.Nop())

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Apply(context.Background(), job.ID, "user-1"); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if err := svc.Apply(context.Background(), job.ID, "user-1"); err != nil {
		t.Fatalf("second apply must also succeed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), job.ID)
	if len(stored.Applicants) != 1 || stored.Applicants[0] != "user-1" {
		t.Fatalf("expected exactly one applicant entry, got %v", stored.Applicants)
	}
}

func TestJobService_Apply_ConcurrentDistinctUsers(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, nil, zerolog.Nop())

	job, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := svc.Apply(context.Background(), job.ID, fmt.Sprintf("user-%d", i)); err != nil {
				t.Errorf("apply user-%d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	stored, _ := repo.FindByID(context.Background(), job.ID)
	if len(stored.Applicants) != n {
		t.Fatalf("expected %d applicants, got %d (lost update)", n, len(stored.Applicants))
	}
}

// ---------------------------------------------------------------------------
// List / Get
// ---------------------------------------------------------------------------

func TestJobService_List_TitleFilterCaseInsensitive(t *testing.T) {
	repo := newStubJobRepo()
	svc := NewJobService(repo, nil, zerolog.Nop())

	for _, title := range []string{"Software ENGINEER", "Data engineer", "Product Manager"} {
		in := validInput()
		in.Title = title
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	jobs, err := svc.List(context.Background(), "engineer")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(jobs))
	}
	for _, j := range jobs {
		if !strings.Contains(strings.ToLower(j.Title), "engineer") {
			t.Fatalf("unexpected match: %q", j.Title)
		}
	}
}

func TestJobService_Get_NotFound(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), nil, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
