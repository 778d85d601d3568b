package extract

import (
	"extractor/internal/core/job"
	"extractor/internal/core/taxonomy"
	"extractor/internal/domain"
)

type Request struct {
	URL string `json:"url" form:"url"`
}

type Response struct {
	Success bool              `json:"success"`
	URL     string            `json:"url"`
	Record  domain.ToolRecord `json:"record"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Stage   string `json:"stage,omitempty"`
}

type JobCreatedResponse struct {
	Success bool       `json:"success"`
	JobID   string     `json:"job_id"`
	Status  job.Status `json:"status"`
}

type JobResponse struct {
	Success bool `json:"success"`
	*job.Job
}

type TaxonomyResponse struct {
	Categories    []taxonomy.Entry `json:"categories"`
	Subcategories []taxonomy.Entry `json:"subcategories"`
	Tags          []taxonomy.Entry `json:"tags"`
}
