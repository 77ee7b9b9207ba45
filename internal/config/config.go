// Package config loads the YAML configuration of the vNext authentication
// client and its local sidecar API.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mifos/vnext-auth/internal/auth"
	"github.com/mifos/vnext-auth/internal/crypto"
)

// Config is the root of the YAML configuration.
type Config struct {
	// FSPID identifies the financial service provider at the hub.
	FSPID  string       `yaml:"fsp_id"`
	Client ClientConfig `yaml:"client"`
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Log    LogConfig    `yaml:"log"`
	Audit  AuditConfig  `yaml:"audit"`
	API    APIConfig    `yaml:"api"`
}

// ClientConfig describes this client and its key material.
type ClientConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// PrivateKey is the path to the PEM PKCS#8 client private key.
	PrivateKey string `yaml:"private_key"`

	// Certificate is the path to the client certificate signed by the hub.
	Certificate string `yaml:"certificate"`
}

// ServerConfig locates the hub and its intermediate CA.
type ServerConfig struct {
	DNS  string `yaml:"dns"`
	Port int    `yaml:"port"`

	// IntermediateCertificate is the path to the hub intermediate CA,
	// whose key signs hub responses.
	IntermediateCertificate string `yaml:"intermediate_certificate"`
}

// AuthConfig selects the signature algorithm.
type AuthConfig struct {
	// Algorithm is a name or OID, e.g. "SHA1WITHRSA" or "1.2.840.113549.1.1.5".
	Algorithm string `yaml:"algorithm"`
}

// LogConfig configures technical logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// AuditConfig configures the audit trail.
type AuditConfig struct {
	// Log is the path of the hash-chained JSONL audit log. Empty disables
	// auditing.
	Log string `yaml:"log"`
}

// APIConfig configures the local sidecar HTTP API.
type APIConfig struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	MaxConnections int           `yaml:"max_connections"`
	Timeouts       TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig holds HTTP server timeouts.
type TimeoutConfig struct {
	Read     time.Duration `yaml:"read"`
	Write    time.Duration `yaml:"write"`
	Idle     time.Duration `yaml:"idle"`
	Shutdown time.Duration `yaml:"shutdown"`
}

// Default returns a configuration with every optional value set.
func Default() *Config {
	return &Config{
		Client: ClientConfig{Version: "1.0"},
		Server: ServerConfig{Port: 443},
		Auth:   AuthConfig{Algorithm: string(crypto.DefaultAlgorithm)},
		Log:    LogConfig{Level: "info", Format: "json"},
		API: APIConfig{
			Host:           "127.0.0.1",
			Port:           8089,
			MaxConnections: 64,
			Timeouts: TimeoutConfig{
				Read:     10 * time.Second,
				Write:    10 * time.Second,
				Idle:     60 * time.Second,
				Shutdown: 10 * time.Second,
			},
		},
	}
}

// Load reads the YAML file at path on top of Default and applies the
// VNEXT_* environment overrides. The result is not validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of Default and applies the
// VNEXT_* environment overrides.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envVar binds an environment variable to a string field.
type envVar struct {
	name  string
	field *string
}

// ApplyEnv overrides values from VNEXT_* environment variables. Unset
// variables leave the current value in place.
func (c *Config) ApplyEnv() error {
	strs := []envVar{
		{"VNEXT_FSP_ID", &c.FSPID},
		{"VNEXT_CLIENT_NAME", &c.Client.Name},
		{"VNEXT_CLIENT_VERSION", &c.Client.Version},
		{"VNEXT_PRIVATE_KEY", &c.Client.PrivateKey},
		{"VNEXT_CLIENT_CERTIFICATE", &c.Client.Certificate},
		{"VNEXT_SERVER_DNS", &c.Server.DNS},
		{"VNEXT_INTERMEDIATE_CERTIFICATE", &c.Server.IntermediateCertificate},
		{"VNEXT_ALGORITHM", &c.Auth.Algorithm},
		{"VNEXT_LOG_LEVEL", &c.Log.Level},
		{"VNEXT_LOG_FORMAT", &c.Log.Format},
		{"VNEXT_AUDIT_LOG", &c.Audit.Log},
		{"VNEXT_API_HOST", &c.API.Host},
	}
	for _, v := range strs {
		if s, ok := os.LookupEnv(v.name); ok {
			*v.field = s
		}
	}

	ints := []struct {
		name  string
		field *int
	}{
		{"VNEXT_SERVER_PORT", &c.Server.Port},
		{"VNEXT_API_PORT", &c.API.Port},
		{"VNEXT_API_MAX_CONNECTIONS", &c.API.MaxConnections},
	}
	for _, v := range ints {
		s, ok := os.LookupEnv(v.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid %s: %w", v.name, err)
		}
		*v.field = n
	}
	return nil
}

// Validate checks the properties required to authenticate against the hub.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	required := []struct {
		name  string
		value string
	}{
		{"fsp_id", c.FSPID},
		{"client.name", c.Client.Name},
		{"server.dns", c.Server.DNS},
		{"client.private_key", c.Client.PrivateKey},
		{"server.intermediate_certificate", c.Server.IntermediateCertificate},
		{"client.certificate", c.Client.Certificate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	if _, err := crypto.ResolveAlgorithm(c.Auth.Algorithm); err != nil {
		errs = append(errs, fmt.Errorf("auth.algorithm: %w", err))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		errs = append(errs, fmt.Errorf("api.port out of range: %d", c.API.Port))
	}
	if c.API.MaxConnections < 0 {
		errs = append(errs, fmt.Errorf("api.max_connections must not be negative"))
	}
	switch c.Log.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or console, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// AuthFiles returns the file locations for auth.NewFromFiles.
func (c *Config) AuthFiles() auth.Config {
	return auth.Config{
		PrivateKey:              c.Client.PrivateKey,
		IntermediateCertificate: c.Server.IntermediateCertificate,
		ClientCertificate:       c.Client.Certificate,
	}
}

// ServerAddress returns the hub address as host:port.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.DNS, c.Server.Port)
}

// APIAddress returns the listen address of the sidecar API.
func (c *Config) APIAddress() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port)
}
