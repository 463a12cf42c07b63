package handler

import (
	"context"
	"net/http"
	"time"

	"typeset/internal/httputil"
)

// Pinger is the database health probe; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness endpoints
type HealthHandler struct {
	db        Pinger
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startedAt: time.Now(),
	}
}

type healthResponse struct {
	Status     string                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     int64                      `json:"uptime"`
	Database   *healthDatabase            `json:"database,omitempty"`
	Components map[string]healthComponent `json:"components,omitempty"`
}

type healthDatabase struct {
	Connected bool `json:"connected"`
}

type healthComponent struct {
	Status string `json:"status"`
}

func (h *HealthHandler) check(ctx context.Context) bool {
	return h.db.Ping(ctx) == nil
}

// Health is the quick health check
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	healthy := h.check(r.Context())

	resp := healthResponse{
		Status:    statusWord(healthy),
		Timestamp: time.Now().UTC(),
		Uptime:    int64(time.Since(h.startedAt).Seconds()),
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

// HealthDetailed includes per-component status
// GET /health/detailed
func (h *HealthHandler) HealthDetailed(w http.ResponseWriter, r *http.Request) {
	healthy := h.check(r.Context())

	resp := healthResponse{
		Status:    statusWord(healthy),
		Timestamp: time.Now().UTC(),
		Uptime:    int64(time.Since(h.startedAt).Seconds()),
		Database:  &healthDatabase{Connected: healthy},
		Components: map[string]healthComponent{
			"database": {Status: componentWord(healthy)},
		},
	}

	httputil.RespondJSON(w, http.StatusOK, resp)
}

func statusWord(healthy bool) string {
	if healthy {
		return "healthy"
	}
	return "unhealthy"
}

func componentWord(healthy bool) string {
	if healthy {
		return "up"
	}
	return "down"
}
