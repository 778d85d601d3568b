package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"extractor/internal/platform/redis"
)

const (
	TaskTypeExtract = "extract:task"
	QueueDefault    = "default"
)

// ExtractPayload is the body of an extract:task.
type ExtractPayload struct {
	JobID string `json:"job_id"`
	URL   string `json:"url"`
}

func NewExtractTask(p ExtractPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal extract payload: %w", err)
	}
	return asynq.NewTask(TaskTypeExtract, b), nil
}

func ParseExtractPayload(task *asynq.Task) (ExtractPayload, error) {
	var p ExtractPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("decode %s payload: %w", task.Type(), err)
	}
	if p.JobID == "" || p.URL == "" {
		return p, fmt.Errorf("%s payload needs job_id and url", task.Type())
	}
	return p, nil
}

type Client struct{ c *asynq.Client }

func New(r *redis.Service) *Client { return &Client{c: asynq.NewClient(r.AsynqRedisOpt())} }

func (t *Client) Enqueue(task *asynq.Task, queue string, maxRetries int) error {
	_, err := t.c.Enqueue(task, asynq.Queue(queue), asynq.MaxRetry(maxRetries))
	return err
}

func (t *Client) Close() error { return t.c.Close() }
