package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const readinessProbeTimeout = 2 * time.Second

// readinessCheck probes one dependency the service cannot run without.
type readinessCheck struct {
	name  string
	probe func(ctx context.Context) error
}

// HealthController reports liveness and per-dependency readiness.
type HealthController struct {
	checks []readinessCheck
}

func NewHealthController(pool *pgxpool.Pool, redisClient *redis.Client) *HealthController {
	return &HealthController{
		checks: []readinessCheck{
			{name: "postgres", probe: pool.Ping},
			{name: "redis", probe: func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			}},
		},
	}
}

func (h *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HealthController) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness runs every dependency probe and reports each outcome, so a
// failing deploy names the broken dependency instead of a bare 503.
func (h *HealthController) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessProbeTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.checks))
	ready := true
	for _, c := range h.checks {
		if err := c.probe(ctx); err != nil {
			checks[c.name] = err.Error()
			ready = false
			continue
		}
		checks[c.name] = "ok"
	}

	status := http.StatusOK
	overall := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}
	writeJSON(w, status, map[string]any{
		"status": overall,
		"checks": checks,
	})
}
