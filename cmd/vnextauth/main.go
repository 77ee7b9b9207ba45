// Command vnextauth signs hub challenges, verifies hub responses and runs
// the authentication sidecar for the vNext payment hub connector.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mifos/vnext-auth/internal/audit"
	"github.com/mifos/vnext-auth/internal/config"
	"github.com/mifos/vnext-auth/internal/logging"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// recentAuditEvents is the number of audit events kept in memory for the
// sidecar's /audit/events endpoint.
const recentAuditEvents = 256

// Global flags
var (
	configPath   string
	auditLogPath string
	logLevel     string
)

// State shared by subcommands, set up in PersistentPreRunE.
var (
	cfg          *config.Config
	logger       = zap.NewNop()
	recentEvents *audit.MemoryWriter
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vnextauth",
	Short: "Challenge authentication for the vNext payment hub",
	Long: `vnextauth signs challenges issued by the vNext payment hub with the
participant's private key and verifies the hub's counter-signed responses
against the hub intermediate CA.

Configuration is read from a YAML file (--config) and VNEXT_* environment
variables. Command flags take precedence over both.

Examples:
  # Sign a challenge
  vnextauth sign --config vnext.yaml 9f4c2e

  # Verify a hub response
  vnextauth verify --config vnext.yaml --signature <b64> --fingerprint <hex> 9f4c2e

  # Print the fingerprint of the hub intermediate CA
  vnextauth fingerprint hub-intermediate.pem

  # Run the sidecar API
  vnextauth serve --config vnext.yaml --audit-log audit.jsonl`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
		} else {
			cfg = config.Default()
			err = cfg.ApplyEnv()
		}
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		l, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
		if err != nil {
			return err
		}
		logger = l
		zap.ReplaceGlobals(logger)

		if auditLogPath == "" {
			auditLogPath = cfg.Audit.Log
		}
		cfg.Audit.Log = auditLogPath
		return initAudit(auditLogPath)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		_ = logger.Sync()
		return audit.Close()
	},
}

// initAudit installs the hash-chained file log at path, mirrored into an
// in-memory ring. An empty path disables auditing.
func initAudit(path string) error {
	if err := audit.Close(); err != nil {
		return err
	}
	recentEvents = nil
	if path == "" {
		return audit.Init(nil)
	}

	fw, err := audit.NewFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to initialize audit log: %w", err)
	}
	recentEvents = audit.NewMemoryWriter(recentAuditEvents)
	return audit.Init(audit.NewMultiWriter(fw, recentEvents))
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&auditLogPath, "audit-log", "",
		"Path to audit log file (or set VNEXT_AUDIT_LOG env var)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(fingerprintCmd)
	rootCmd.AddCommand(algorithmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(auditCmd)
}
