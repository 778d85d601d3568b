package job

import (
	"time"

	"extractor/internal/domain"
)

// Job is the stored state of an asynchronous extraction.
type Job struct {
	JobID     string             `json:"job_id"`
	Type      Type               `json:"type"`
	Status    Status             `json:"status"`
	URL       string             `json:"url"`
	Result    *domain.ToolRecord `json:"result,omitempty"`
	Error     string             `json:"error,omitempty"`
	Stage     domain.Stage       `json:"stage,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type Type string

const (
	TypeExtract Type = "extract"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Done reports whether the job reached a terminal status.
func (s Status) Done() bool {
	return s == StatusCompleted || s == StatusFailed
}
