// Package router provides HTTP routing configuration using Chi.
package router

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mifos/vnext-auth/internal/api/handler"
	"github.com/mifos/vnext-auth/internal/api/middleware"
	"github.com/mifos/vnext-auth/internal/audit"
)

//go:embed openapi.yaml
var openapiSpec []byte

// Config holds router configuration.
type Config struct {
	Version string

	// Authenticator signs and verifies. Required.
	Authenticator handler.Authenticator

	// AuditLog is the path of the audit log checked by /audit/verify.
	AuditLog string

	// Recent holds recent audit events for /audit/events. Optional.
	Recent *audit.MemoryWriter

	Logger *zap.Logger
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recoverer(log))

	// Health endpoints
	healthHandler := handler.NewHealthHandler(cfg.Version, map[string]handler.ReadyCheck{
		"fingerprint": func() bool {
			_, err := cfg.Authenticator.Fingerprint()
			return err == nil
		},
		"client_certificate": func() bool {
			return cfg.Authenticator.ClientCertificate() != nil
		},
	})
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// OpenAPI spec
	r.Get("/api/openapi.yaml", serveOpenAPISpec)

	challengeHandler := handler.NewChallengeHandler(cfg.Authenticator)
	statusHandler := handler.NewStatusHandler(cfg.Authenticator)
	fingerprintHandler := handler.NewFingerprintHandler()
	algorithmHandler := handler.NewAlgorithmHandler()
	auditHandler := handler.NewAuditHandler(cfg.AuditLog, cfg.Recent)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", statusHandler.Status)

		r.Route("/challenge", func(r chi.Router) {
			r.Post("/sign", challengeHandler.Sign)
			r.Post("/verify", challengeHandler.Verify)
		})

		r.Post("/fingerprint", fingerprintHandler.Compute)

		r.Route("/algorithms", func(r chi.Router) {
			r.Get("/", algorithmHandler.List)
			r.Get("/*", algorithmHandler.Get)
		})

		r.Route("/audit", func(r chi.Router) {
			r.Get("/events", auditHandler.Events)
			r.Post("/verify", auditHandler.Verify)
		})
	})

	return r
}

// serveOpenAPISpec serves the OpenAPI specification file.
func serveOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openapiSpec)
}
