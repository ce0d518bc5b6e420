package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/ecoleta/internal/middleware"
	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
//
// PostgreSQL is required: when it is unreachable the endpoint answers 503.
// Redis only backs confirmation emails, so its state is reported without
// affecting the overall status.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// checkResult is one entry of the "checks" map.
type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Service     string                 `json:"service"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth returns 200 when every required dependency answers and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	obs := h.server.Config.Observability

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Service:     obs.ServiceName,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult),
	}

	isHealthy := true

	if obs.HealthCheckEnabled("database") {
		result := h.runCheck(c.Request().Context(), &logger, "database", func(ctx context.Context) error {
			return h.server.DB.Pool.Ping(ctx)
		})
		response.Checks["database"] = result
		if result.Status != "healthy" {
			isHealthy = false
		}
	}

	if h.server.Redis != nil && obs.HealthCheckEnabled("redis") {
		response.Checks["redis"] = h.runCheck(c.Request().Context(), &logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if !isHealthy {
		response.Status = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck pings one dependency within the configured timeout.
func (h *HealthHandler) runCheck(parent context.Context, logger *zerolog.Logger, name string, ping func(ctx context.Context) error) checkResult {
	ctx, cancel := context.WithTimeout(parent, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return checkResult{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	return checkResult{
		Status:       "healthy",
		ResponseTime: elapsed.String(),
	}
}

// recordHealthEvent records a HealthCheckError custom event when New Relic
// is enabled.
func (h *HealthHandler) recordHealthEvent(attrs map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}
