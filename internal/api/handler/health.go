// Package handler provides HTTP handlers for the sidecar API.
package handler

import (
	"net/http"
	"sort"

	"github.com/mifos/vnext-auth/internal/api/dto"
)

// ReadyCheck reports whether one dependency of the server is usable.
type ReadyCheck func() bool

// HealthHandler handles health and readiness endpoints.
type HealthHandler struct {
	version string
	checks  map[string]ReadyCheck
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(version string, checks map[string]ReadyCheck) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks:  checks,
	}
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready handles GET /ready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]bool, len(names))
	allReady := true
	for _, name := range names {
		ok := h.checks[name]()
		checks[name] = ok
		allReady = allReady && ok
	}

	status := http.StatusOK
	if !allReady {
		status = http.StatusServiceUnavailable
	}

	respond(w, r, status, dto.ReadyResponse{
		Ready:  allReady,
		Checks: checks,
	})
}
