package extract

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"extractor/internal/core/job"
	"extractor/internal/logger"
	"extractor/internal/platform/metrics"
	"extractor/internal/platform/tasks"
)

// Enqueuer is satisfied by *tasks.Client.
type Enqueuer interface {
	Enqueue(task *asynq.Task, queue string, maxRetries int) error
}

// JobRunner accepts extraction jobs and executes them on the asynq worker.
type JobRunner struct {
	service    *Service
	jobs       *job.JobService
	enqueuer   Enqueuer
	maxRetries int
	metrics    *metrics.Metrics
	log        *logger.Logger
}

func NewJobRunner(service *Service, jobs *job.JobService, enqueuer Enqueuer, maxRetries int, m *metrics.Metrics) *JobRunner {
	return &JobRunner{
		service:    service,
		jobs:       jobs,
		enqueuer:   enqueuer,
		maxRetries: maxRetries,
		metrics:    m,
		log:        logger.New("ExtractJobs"),
	}
}

// Submit stores a pending job and enqueues it, returning the new job id.
func (r *JobRunner) Submit(ctx context.Context, url string) (string, error) {
	jobID := uuid.NewString()
	if err := r.jobs.InitPending(ctx, jobID, url); err != nil {
		return "", err
	}
	task, err := tasks.NewExtractTask(tasks.ExtractPayload{JobID: jobID, URL: url})
	if err != nil {
		return "", err
	}
	if err := r.enqueuer.Enqueue(task, tasks.QueueDefault, r.maxRetries); err != nil {
		_ = r.jobs.Fail(ctx, jobID, fmt.Errorf("enqueue: %w", err))
		return "", fmt.Errorf("enqueue extract task: %w", err)
	}
	r.log.LogInfof("queued extract job %s for %s", jobID, url)
	return jobID, nil
}

func (r *JobRunner) Status(ctx context.Context, jobID string) (*job.Job, error) {
	return r.jobs.GetJobStatus(ctx, jobID)
}

// HandleTask runs one extract:task. Pipeline failures end the job as failed without an asynq retry.
func (r *JobRunner) HandleTask(ctx context.Context, task *asynq.Task) error {
	p, err := tasks.ParseExtractPayload(task)
	if err != nil {
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}
	if err := r.jobs.SetProcessing(ctx, p.JobID); err != nil {
		return err
	}

	record, err := r.service.Extract(ctx, p.URL)
	if err != nil {
		r.metrics.JobFinished(string(job.StatusFailed))
		r.log.LogWarnf("extract job %s failed: %v", p.JobID, err)
		return r.jobs.Fail(ctx, p.JobID, err)
	}

	r.metrics.JobFinished(string(job.StatusCompleted))
	return r.jobs.Complete(ctx, p.JobID, record)
}
