package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"varsha-travels/internal/utils"
	"varsha-travels/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Health(c *gin.Context) {
	utils.SuccessResponse(c, HealthResponse{
		Status:  "ok",
		Message: utils.MsgHealthy,
	})
}

// Pinger is a dependency that can report whether it is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain check func.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type ReadinessHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
	logger  *logger.Logger
}

func NewReadinessHandler(checks map[string]Pinger, timeout time.Duration, log *logger.Logger) *ReadinessHandler {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if log == nil {
		log = logger.Discard()
	}
	return &ReadinessHandler{checks: checks, timeout: timeout, logger: log}
}

// Ready pings every dependency in parallel. Any failure answers 503.
func (h *ReadinessHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		failed bool
	)
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		wg.Add(1)
		go func(name string, check Pinger) {
			defer wg.Done()
			err := check.Ping(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				h.logger.WithContext(c.Request.Context()).WithError(err).WithField("dependency", name).Warn("readiness check failed")
				results[name] = "down"
				failed = true
				return
			}
			results[name] = "ok"
		}(name, check)
	}
	wg.Wait()

	if failed {
		c.JSON(http.StatusServiceUnavailable, ReadinessResponse{Status: "unavailable", Checks: results})
		return
	}
	utils.SuccessResponse(c, ReadinessResponse{Status: "ok", Checks: results})
}
