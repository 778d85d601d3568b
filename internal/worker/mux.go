package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"extractor/internal/logger"
)

// Mux routes asynq tasks to handlers and logs each run.
type Mux struct {
	mux *asynq.ServeMux
	log *logger.Logger
}

func NewMux() *Mux {
	m := &Mux{mux: asynq.NewServeMux(), log: logger.New("Worker")}
	m.mux.Use(m.logging)
	return m
}

func (m *Mux) HandleFunc(t string, h func(ctx context.Context, task *asynq.Task) error) {
	m.mux.HandleFunc(t, h)
}

func (m *Mux) Mux() *asynq.ServeMux { return m.mux }

func (m *Mux) logging(next asynq.Handler) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, task *asynq.Task) error {
		start := time.Now()
		err := next.ProcessTask(ctx, task)
		if err != nil {
			m.log.Error().Str("task", task.Type()).Dur("took", time.Since(start)).Err(err).Msg("task failed")
			return err
		}
		m.log.Debug().Str("task", task.Type()).Dur("took", time.Since(start)).Msg("task done")
		return nil
	})
}
