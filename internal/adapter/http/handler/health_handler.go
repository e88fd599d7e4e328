package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const readinessTimeout = 5 * time.Second

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	pool        *pgxpool.Pool
	redisClient *redis.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pool *pgxpool.Pool, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:        pool,
		redisClient: redisClient,
	}
}

// Liveness returns 200 while the process is running.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness checks both backing stores. The ledger cannot serve any request
// without PostgreSQL, and mutating requests need Redis for idempotency.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"postgres": "ok", "redis": "ok"}
	ready := true

	if h.pool == nil {
		checks["postgres"] = "not configured"
		ready = false
	} else if err := h.pool.Ping(ctx); err != nil {
		checks["postgres"] = err.Error()
		ready = false
	}

	if h.redisClient == nil {
		checks["redis"] = "not configured"
		ready = false
	} else if err := h.redisClient.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		ready = false
	}

	status := http.StatusOK
	result := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		result = "not ready"
	}

	writeJSON(w, status, map[string]any{
		"status": result,
		"checks": checks,
	})
}
