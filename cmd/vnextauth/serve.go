package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mifos/vnext-auth/internal/api/router"
	"github.com/mifos/vnext-auth/internal/api/server"
)

// Serve command flags
var (
	serveHost           string
	servePort           int
	serveMaxConnections int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the authentication sidecar API",
	Long: `Run the authentication sidecar API.

The sidecar exposes challenge signing, response verification, fingerprint
and algorithm lookups over HTTP for the connector session layer. Bodies are
JSON by default and CBOR with Content-Type/Accept application/cbor.

Endpoints:
  GET  /health
  GET  /ready
  GET  /api/openapi.yaml
  GET  /api/v1/status
  POST /api/v1/challenge/sign
  POST /api/v1/challenge/verify
  POST /api/v1/fingerprint
  GET  /api/v1/algorithms
  GET  /api/v1/algorithms/{name}
  GET  /api/v1/audit/events
  POST /api/v1/audit/verify

The full configuration is validated before the listener is opened.

Environment variables:
  VNEXT_API_HOST             Host to bind to
  VNEXT_API_PORT             Port to listen on
  VNEXT_API_MAX_CONNECTIONS  Cap on concurrent connections

Examples:
  vnextauth serve --config vnext.yaml
  vnextauth serve --config vnext.yaml --port 9090 --audit-log audit.jsonl`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8089)")
	serveCmd.Flags().IntVar(&serveMaxConnections, "max-connections", -1, "Cap on concurrent connections, 0 for none")
}

// applyServeFlags overrides the API section of the configuration with any
// flags given on the command line.
func applyServeFlags() {
	if serveHost != "" {
		cfg.API.Host = serveHost
	}
	if servePort != 0 {
		cfg.API.Port = servePort
	}
	if serveMaxConnections >= 0 {
		cfg.API.MaxConnections = serveMaxConnections
	}
}

// serverConfig converts the API section of the configuration.
func serverConfig() *server.Config {
	return &server.Config{
		Host:            cfg.API.Host,
		Port:            cfg.API.Port,
		MaxConnections:  cfg.API.MaxConnections,
		ReadTimeout:     cfg.API.Timeouts.Read,
		WriteTimeout:    cfg.API.Timeouts.Write,
		IdleTimeout:     cfg.API.Timeouts.Idle,
		ShutdownTimeout: cfg.API.Timeouts.Shutdown,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	applyServeFlags()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a, err := loadAuthenticator()
	if err != nil {
		return err
	}

	handler := router.New(&router.Config{
		Version:       version,
		Authenticator: a,
		AuditLog:      cfg.Audit.Log,
		Recent:        recentEvents,
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting sidecar",
		zap.String("fsp_id", cfg.FSPID),
		zap.String("client", cfg.Client.Name),
		zap.String("hub", cfg.ServerAddress()),
		zap.String("algorithm", string(a.Algorithm().ID())),
		zap.Bool("audit", cfg.Audit.Log != ""),
	)
	return server.New(serverConfig(), handler, logger).Start(ctx)
}
