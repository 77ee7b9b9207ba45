package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mifos/vnext-auth/internal/crypto"
)

const sampleYAML = `
fsp_id: greenbank
client:
  name: greenbank-connector
  private_key: /etc/vnext/client.key
  certificate: /etc/vnext/client.crt
server:
  dns: hub.vnext.example
  port: 5000
  intermediate_certificate: /etc/vnext/hub-intermediate.pem
auth:
  algorithm: SHA256WITHRSA
log:
  level: debug
  format: console
audit:
  log: /var/log/vnext/audit.jsonl
api:
  port: 9000
  timeouts:
    read: 5s
`

// =============================================================================
// [Unit] Loading
// =============================================================================

func TestU_Load_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vnext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, "greenbank", cfg.FSPID)
	require.Equal(t, "greenbank-connector", cfg.Client.Name)
	require.Equal(t, "1.0", cfg.Client.Version, "default kept")
	require.Equal(t, "hub.vnext.example:5000", cfg.ServerAddress())
	require.Equal(t, "SHA256WITHRSA", cfg.Auth.Algorithm)
	require.Equal(t, "console", cfg.Log.Format)
	require.Equal(t, "/var/log/vnext/audit.jsonl", cfg.Audit.Log)
	require.Equal(t, "127.0.0.1:9000", cfg.APIAddress())
	require.Equal(t, 5*time.Second, cfg.API.Timeouts.Read)
	require.Equal(t, 10*time.Second, cfg.API.Timeouts.Write, "default kept")

	files := cfg.AuthFiles()
	require.Equal(t, "/etc/vnext/client.key", files.PrivateKey)
	require.Equal(t, "/etc/vnext/hub-intermediate.pem", files.IntermediateCertificate)
	require.Equal(t, "/etc/vnext/client.crt", files.ClientCertificate)
}

func TestU_Load_Errors(t *testing.T) {
	t.Run("[Unit] Load: missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("[Unit] Load: invalid YAML", func(t *testing.T) {
		_, err := Parse([]byte("fsp_id: [unterminated"))
		require.Error(t, err)
	})

	t.Run("[Unit] Load: invalid duration", func(t *testing.T) {
		_, err := Parse([]byte("api:\n  timeouts:\n    read: soon\n"))
		require.Error(t, err)
	})
}

func TestU_Default(t *testing.T) {
	cfg := Default()
	require.Equal(t, string(crypto.DefaultAlgorithm), cfg.Auth.Algorithm)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 64, cfg.API.MaxConnections)
	require.Empty(t, cfg.Audit.Log)
}

// =============================================================================
// [Unit] Environment overrides
// =============================================================================

func TestU_ApplyEnv(t *testing.T) {
	t.Setenv("VNEXT_FSP_ID", "bluebank")
	t.Setenv("VNEXT_ALGORITHM", "SHA512WITHRSA")
	t.Setenv("VNEXT_API_PORT", "9100")
	t.Setenv("VNEXT_AUDIT_LOG", "")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, "bluebank", cfg.FSPID)
	require.Equal(t, "SHA512WITHRSA", cfg.Auth.Algorithm)
	require.Equal(t, 9100, cfg.API.Port)
	require.Empty(t, cfg.Audit.Log, "set but empty variable overrides")
	require.Equal(t, "greenbank-connector", cfg.Client.Name, "unset variable keeps value")
}

func TestU_ApplyEnv_InvalidInt(t *testing.T) {
	t.Setenv("VNEXT_SERVER_PORT", "https")
	_, err := Parse([]byte(sampleYAML))
	require.ErrorContains(t, err, "VNEXT_SERVER_PORT")
}

// =============================================================================
// [Unit] Validation
// =============================================================================

func TestU_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Parse([]byte(sampleYAML))
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"[Unit] Validate: fsp id", func(c *Config) { c.FSPID = "" }, "fsp_id is required"},
		{"[Unit] Validate: client name", func(c *Config) { c.Client.Name = " " }, "client.name is required"},
		{"[Unit] Validate: server dns", func(c *Config) { c.Server.DNS = "" }, "server.dns is required"},
		{"[Unit] Validate: private key", func(c *Config) { c.Client.PrivateKey = "" }, "client.private_key is required"},
		{"[Unit] Validate: intermediate", func(c *Config) { c.Server.IntermediateCertificate = "" }, "server.intermediate_certificate is required"},
		{"[Unit] Validate: client certificate", func(c *Config) { c.Client.Certificate = "" }, "client.certificate is required"},
		{"[Unit] Validate: unsupported algorithm", func(c *Config) { c.Auth.Algorithm = "GOST3410" }, "auth.algorithm"},
		{"[Unit] Validate: unknown algorithm", func(c *Config) { c.Auth.Algorithm = "NOPE" }, "auth.algorithm"},
		{"[Unit] Validate: api port", func(c *Config) { c.API.Port = 70000 }, "api.port out of range"},
		{"[Unit] Validate: log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestU_Validate_ReportsAll(t *testing.T) {
	err := Default().Validate()
	require.Error(t, err)
	for _, name := range []string{"fsp_id", "client.name", "server.dns", "client.private_key", "server.intermediate_certificate", "client.certificate"} {
		require.ErrorContains(t, err, name)
	}
}
