package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"extractor/internal/core/extract"
	"extractor/internal/core/taxonomy"
	"extractor/internal/health"
	"extractor/internal/platform/metrics"
)

type Dependencies struct {
	Extract  *extract.Service
	Jobs     *extract.JobRunner
	Taxonomy *taxonomy.Taxonomy
	Metrics  *metrics.Metrics
	Health   []health.Component
}

func RegisterRoutes(app *fiber.App, d Dependencies) *health.HealthHandler {
	healthHandler := health.NewHealthHandler(d.Health...)
	app.Get("/v1/health", health.HealthLimiter(), healthHandler.HandleHealth)

	if d.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(d.Metrics.Handler()))
	}

	api := app.Group("/v1")

	extractHandler := extract.NewHandler(d.Extract, d.Jobs, d.Taxonomy)
	api.Get("/extract", extractHandler.HandleGetExtract)
	api.Post("/extract", extractHandler.HandlePostExtract)
	api.Post("/extract/jobs", extractHandler.HandleCreateJob)
	api.Get("/extract/jobs/:jobId", extractHandler.HandleGetJob)
	api.Get("/taxonomy", extractHandler.HandleTaxonomy)

	return healthHandler
}
