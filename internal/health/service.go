package health

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"extractor/internal/logger"
)

// Component is a named dependency probed on every health request.
type Component struct {
	Name  string
	Check func(context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	log        *logger.Logger
	components []Component
	startTime  time.Time
	isReady    atomic.Bool
	timeout    time.Duration
}

func NewHealthHandler(components ...Component) *HealthHandler {
	return &HealthHandler{
		log:        logger.New("HealthCheck"),
		components: components,
		startTime:  time.Now(),
		timeout:    8 * time.Second,
	}
}

// SetReady marks the application as ready to receive traffic
func (h *HealthHandler) SetReady() {
	h.isReady.Store(true)
	h.log.LogSuccessf("Application marked as ready for traffic after %v", time.Since(h.startTime))
}

type ComponentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type OverallHealth struct {
	OverallStatus string                     `json:"overall_status"`
	Timestamp     string                     `json:"timestamp"`
	Ready         bool                       `json:"ready"`
	UptimeSeconds int64                      `json:"uptime_seconds"`
	Components    map[string]ComponentStatus `json:"components"`
}

// HandleHealth responds with the system's health status, including dependencies
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	startTime := time.Now()
	h.log.LogDebugf("Health check started")

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	statuses := make(map[string]ComponentStatus, len(h.components))
	var wg sync.WaitGroup
	var mu sync.Mutex
	allOk := true

	for _, component := range h.components {
		wg.Add(1)
		go func(component Component) {
			defer wg.Done()
			componentStart := time.Now()
			status := ComponentStatus{Status: "ok"}
			if err := component.Check(ctx); err != nil {
				status = ComponentStatus{Status: "error", Error: err.Error()}
				h.log.LogErrorf("Health check failed for %s after %v: %v", component.Name, time.Since(componentStart), err)
			} else {
				h.log.LogDebugf("Health check passed for %s in %v", component.Name, time.Since(componentStart))
			}
			mu.Lock()
			defer mu.Unlock()
			if status.Status != "ok" {
				allOk = false
			}
			statuses[component.Name] = status
		}(component)
	}
	wg.Wait()

	ready := h.isReady.Load()
	response := OverallHealth{
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
		Ready:         ready,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		Components:    statuses,
	}

	switch {
	case allOk && ready:
		response.OverallStatus = "ok"
		h.log.LogDebugf("Health check completed successfully in %v", time.Since(startTime))
		return c.Status(http.StatusOK).JSON(response)
	case !ready:
		response.OverallStatus = "starting"
		return c.Status(http.StatusServiceUnavailable).JSON(response)
	}

	response.OverallStatus = "error"
	h.log.LogWarnf("Health check failed after %v. Statuses: %+v", time.Since(startTime), statuses)
	return c.Status(http.StatusServiceUnavailable).JSON(response)
}

func HealthLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Rate limit exceeded"})
		},
	})
}
