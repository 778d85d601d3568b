package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"extractor/internal/core/extract"
	"extractor/internal/core/job"
	"extractor/internal/health"
	"extractor/internal/logger"
	"extractor/internal/platform/metrics"
	rds "extractor/internal/platform/redis"
	tasks "extractor/internal/platform/tasks"
	"extractor/internal/server"
	"extractor/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the extraction worker",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logr := logger.New("main")
	logr.LogInfof("starting at %s (env=%s)", cfg.HTTPAddr, cfg.AppEnv)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	m := metrics.New()

	p, err := buildPipeline(ctx, cfg, m, logr)
	if err != nil {
		return err
	}

	redisSvc, err := rds.New(ctx, rds.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return err
	}
	defer redisSvc.Close()

	taskClient := tasks.New(redisSvc)
	defer taskClient.Close()
	asynqServer := asynq.NewServer(redisSvc.AsynqRedisOpt(), asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
		Queues:      map[string]int{tasks.QueueDefault: 1},
	})

	jobSvc := job.NewJobService(redisSvc)
	runner := extract.NewJobRunner(p.extract, jobSvc, taskClient, cfg.TaskMaxRetries, m)

	mux := worker.NewMux()
	mux.HandleFunc(tasks.TaskTypeExtract, runner.HandleTask)
	if err := asynqServer.Start(mux.Mux()); err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		AppName: "Tool Metadata Extractor",
		JSONEncoder: func(v interface{}) ([]byte, error) {
			var buf bytes.Buffer
			encoder := json.NewEncoder(&buf)
			encoder.SetEscapeHTML(false)
			if err := encoder.Encode(v); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	})

	healthHandler := server.RegisterRoutes(app, server.Dependencies{
		Extract:  p.extract,
		Jobs:     runner,
		Taxonomy: p.taxonomy,
		Metrics:  m,
		Health: []health.Component{
			{Name: "redis", Check: redisSvc.HealthCheck},
			{Name: "llm", Check: func(context.Context) error { return p.normalizer.Configured() }},
		},
	})
	healthHandler.SetReady()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		logr.LogInfo("Shutting down...")
		asynqServer.Shutdown()
		_ = app.ShutdownWithTimeout(5 * time.Second)
	}()

	return app.Listen(cfg.HTTPAddr)
}
