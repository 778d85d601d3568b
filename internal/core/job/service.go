package job

import (
	"context"
	"errors"
	"fmt"
	"time"

	"extractor/internal/domain"
	"extractor/internal/logger"
	rds "extractor/internal/platform/redis"
)

var ErrNotFound = errors.New("job not found")

// Store is the key/value cache jobs are persisted in. *redis.Service implements it;
// a missing key must be reported as redis.ErrCacheMiss.
type Store interface {
	CacheGet(ctx context.Context, key string, dest interface{}) error
	CacheSet(ctx context.Context, key string, val interface{}, ttlSeconds int) error
}

type JobService struct {
	store Store
	log   *logger.Logger
	now   func() time.Time
}

func NewJobService(store Store) *JobService {
	return &JobService{store: store, log: logger.New("JobService"), now: time.Now}
}

func (s *JobService) GetJobStatus(ctx context.Context, jobID string) (*Job, error) {
	var job Job
	if err := s.store.CacheGet(ctx, key(jobID), &job); err != nil {
		if errors.Is(err, rds.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("load job %s: %w", jobID, err)
	}
	return &job, nil
}

func (s *JobService) InitPending(ctx context.Context, jobID, url string) error {
	now := s.now().UTC()
	return s.save(ctx, &Job{
		JobID:     jobID,
		Type:      TypeExtract,
		Status:    StatusPending,
		URL:       url,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *JobService) SetProcessing(ctx context.Context, jobID string) error {
	return s.update(ctx, jobID, func(j *Job) {
		j.Status = StatusProcessing
	})
}

func (s *JobService) Complete(ctx context.Context, jobID string, record domain.ToolRecord) error {
	return s.update(ctx, jobID, func(j *Job) {
		j.Status = StatusCompleted
		j.Result = &record
		j.Error = ""
		j.Stage = ""
	})
}

// Fail stores the error message and, for pipeline failures, the stage that failed.
func (s *JobService) Fail(ctx context.Context, jobID string, cause error) error {
	return s.update(ctx, jobID, func(j *Job) {
		j.Status = StatusFailed
		j.Result = nil
		j.Error = logger.StripANSI(cause.Error())
		var exErr *domain.ExtractionError
		if errors.As(cause, &exErr) {
			j.Stage = exErr.Stage
		}
	})
}

func (s *JobService) update(ctx context.Context, jobID string, mutate func(*Job)) error {
	var job Job
	err := s.store.CacheGet(ctx, key(jobID), &job)
	switch {
	case errors.Is(err, rds.ErrCacheMiss):
		// expired or never initialized; keep going with a fresh record
		s.log.LogWarnf("job %s missing from store, recreating", jobID)
		job = Job{JobID: jobID, Type: TypeExtract, CreatedAt: s.now().UTC()}
	case err != nil:
		return fmt.Errorf("load job %s: %w", jobID, err)
	}
	mutate(&job)
	job.UpdatedAt = s.now().UTC()
	return s.save(ctx, &job)
}

func (s *JobService) save(ctx context.Context, job *Job) error {
	if err := s.store.CacheSet(ctx, key(job.JobID), job, ttl(job.Status)); err != nil {
		return fmt.Errorf("store job %s: %w", job.JobID, err)
	}
	return nil
}

func key(id string) string { return "job:" + id }
func ttl(s Status) int {
	if s.Done() {
		return 3600
	}
	return 600
}
