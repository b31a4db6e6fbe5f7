package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportel/job-board-api/internal/core/domain"
)

const jobsCollection = "jobs"

// JobRepository implements ports.JobRepository using MongoDB.
type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(jobsCollection)}
}

type mongoJob struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Company     string             `bson:"company"`
	Location    string             `bson:"location"`
	Applicants  []string           `bson:"applicants"`
	CreatedAt   int64              `bson:"created_at"`
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		Title:       job.Title,
		Description: job.Description,
		Company:     job.Company,
		Location:    job.Location,
		Applicants:  []string{},
		CreatedAt:   job.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid.Hex()
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mj mongoJob
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mj); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return mj.toDomain(), nil
}

// List returns jobs filtered by a case-insensitive title substring. The
// filter is quoted so user input is matched literally, not as a pattern.
func (r *JobRepository) List(ctx context.Context, titleFilter string) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if titleFilter != "" {
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(titleFilter), Options: "i"}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := []*domain.Job{}
	for cursor.Next(ctx) {
		var mj mongoJob
		if err := cursor.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, mj.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// AddApplicant records the user on the job's applicant set with a single
// $addToSet update. The store serialises concurrent updates to one document,
// so two users applying at the same time are both recorded, and a repeat
// apply by the same user leaves the set unchanged.
func (r *JobRepository) AddApplicant(ctx context.Context, jobID, userID string) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return domain.ErrJobNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{"applicants": userID}},
	)
	if err != nil {
		return fmt.Errorf("add applicant: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the index backing title searches.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "title", Value: 1}},
	})
	return err
}

func (mj *mongoJob) toDomain() *domain.Job {
	applicants := mj.Applicants
	if applicants == nil {
		applicants = []string{}
	}
	return &domain.Job{
		ID:          mj.ID.Hex(),
		Title:       mj.Title,
		Description: mj.Description,
		Company:     mj.Company,
		Location:    mj.Location,
		Applicants:  applicants,
		CreatedAt:   unixToTime(mj.CreatedAt),
	}
}
