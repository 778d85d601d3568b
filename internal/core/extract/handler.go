package extract

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"extractor/internal/core/job"
	"extractor/internal/core/metadata"
	"extractor/internal/core/taxonomy"
	"extractor/internal/domain"
	"extractor/internal/logger"
	"extractor/internal/utils/parser"
)

type Handler struct {
	service  *Service
	jobs     *JobRunner
	taxonomy *taxonomy.Taxonomy
}

// NewHandler wires the HTTP surface. jobs may be nil when no worker is configured.
func NewHandler(service *Service, jobs *JobRunner, tx *taxonomy.Taxonomy) *Handler {
	return &Handler{service: service, jobs: jobs, taxonomy: tx}
}

func (h *Handler) HandleGetExtract(c *fiber.Ctx) error {
	var req Request
	if err := parser.ParseQuery(c, &req); err != nil {
		return badRequest(c, "invalid query")
	}
	return h.extract(c, req.URL)
}

func (h *Handler) HandlePostExtract(c *fiber.Ctx) error {
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	return h.extract(c, req.URL)
}

func (h *Handler) extract(c *fiber.Ctx, rawURL string) error {
	url, err := validateURL(rawURL)
	if err != nil {
		return badRequest(c, err.Error())
	}
	record, err := h.service.Extract(c.UserContext(), url)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(Response{Success: true, URL: url, Record: record})
}

func (h *Handler) HandleCreateJob(c *fiber.Ctx) error {
	if h.jobs == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "job queue not configured"})
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	url, err := validateURL(req.URL)
	if err != nil {
		return badRequest(c, err.Error())
	}
	jobID, err := h.jobs.Submit(c.UserContext(), url)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: logger.StripANSI(err.Error())})
	}
	return c.Status(fiber.StatusAccepted).JSON(JobCreatedResponse{Success: true, JobID: jobID, Status: job.StatusPending})
}

func (h *Handler) HandleGetJob(c *fiber.Ctx) error {
	if h.jobs == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "job queue not configured"})
	}
	j, err := h.jobs.Status(c.UserContext(), c.Params("jobId"))
	if errors.Is(err, job.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.JSON(JobResponse{Success: j.Status != job.StatusFailed, Job: j})
}

func (h *Handler) HandleTaxonomy(c *fiber.Ctx) error {
	return c.JSON(TaxonomyResponse{
		Categories:    h.taxonomy.Categories,
		Subcategories: h.taxonomy.Subcategories,
		Tags:          h.taxonomy.Tags,
	})
}

func validateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("url is required")
	}
	return metadata.NormalizeURL(raw)
}

// StatusFor maps pipeline errors to HTTP status codes.
func StatusFor(err error) int {
	var cfgErr *domain.ConfigurationError
	var exErr *domain.ExtractionError
	switch {
	case errors.Is(err, domain.ErrEmptyURL):
		return fiber.StatusBadRequest
	case errors.As(err, &cfgErr):
		return fiber.StatusServiceUnavailable
	case errors.As(err, &exErr) && exErr.Stage == domain.StageFetch:
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &exErr) && exErr.Stage == domain.StageNormalize:
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func writeError(c *fiber.Ctx, err error) error {
	resp := ErrorResponse{Error: logger.StripANSI(err.Error())}
	var exErr *domain.ExtractionError
	if errors.As(err, &exErr) {
		resp.Stage = string(exErr.Stage)
	}
	return c.Status(StatusFor(err)).JSON(resp)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msg})
}
