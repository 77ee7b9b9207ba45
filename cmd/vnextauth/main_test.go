package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mifos/vnext-auth/internal/crypto"
)

// =============================================================================
// Sign / Verify Tests
// =============================================================================

func TestF_Sign_VerifyRoundTrip(t *testing.T) {
	tc := newTestContext(t)

	sig := tc.sign("9f4c2e")
	require.NotEmpty(t, sig)

	args := append([]string{"verify"}, tc.materialArgs()...)
	args = append(args, "--signature", sig, "--fingerprint", strings.ToUpper(hubFingerprint), "--nonce", "9f4c2e", "9f4c2e")
	out, err := executeCommand(rootCmd, args...)
	require.NoError(t, err, out)
	require.Contains(t, out, "VERIFICATION PASSED")
	require.Contains(t, out, string(crypto.AlgSHA1withRSA))
}

func TestF_Sign_AlgorithmFlag(t *testing.T) {
	tc := newTestContext(t)

	sig := tc.sign("9f4c2e", "--algorithm", "SHA256WITHRSA")

	args := append([]string{"verify"}, tc.materialArgs()...)
	args = append(args, "--algorithm", "sha-256withrsa", "--signature", sig, "--fingerprint", hubFingerprint, "9f4c2e")
	out, err := executeCommand(rootCmd, args...)
	require.NoError(t, err, out)
	require.Contains(t, out, string(crypto.AlgSHA256withRSA))
}

func TestF_Verify_WrongFingerprint(t *testing.T) {
	tc := newTestContext(t)
	sig := tc.sign("9f4c2e")

	args := append([]string{"verify"}, tc.materialArgs()...)
	args = append(args, "--signature", sig, "--fingerprint", "00", "9f4c2e")
	out, err := executeCommand(rootCmd, args...)
	require.Error(t, err)
	require.Contains(t, out, "VERIFICATION FAILED")
	require.Contains(t, out, "fingerprint_mismatch")
}

func TestF_Verify_WrongChallenge(t *testing.T) {
	tc := newTestContext(t)
	sig := tc.sign("9f4c2e")

	args := append([]string{"verify"}, tc.materialArgs()...)
	args = append(args, "--signature", sig, "--fingerprint", hubFingerprint, "9f4c2f")
	out, err := executeCommand(rootCmd, args...)
	require.Error(t, err)
	require.Contains(t, out, "signature_invalid")
}

func TestF_Sign_MissingKey(t *testing.T) {
	tc := newTestContext(t)

	_, err := executeCommand(rootCmd, "sign",
		"--key", tc.path("missing.key"),
		"--intermediate", tc.intermediatePath,
		"--cert", tc.clientCertPath,
		"abc")
	var keyErr *crypto.KeyLoadError
	require.True(t, errors.As(err, &keyErr), "got %v", err)
}

func TestF_Sign_UnknownAlgorithm(t *testing.T) {
	tc := newTestContext(t)

	args := append([]string{"sign"}, tc.materialArgs()...)
	args = append(args, "--algorithm", "NOT-A-REAL-ALG", "abc")
	_, err := executeCommand(rootCmd, args...)
	var unknownErr *crypto.UnknownAlgorithmError
	require.True(t, errors.As(err, &unknownErr), "got %v", err)
}

func TestF_Sign_FromConfigFile(t *testing.T) {
	tc := newTestContext(t)

	cfgPath := tc.writeFile("vnext.yaml", `
fsp_id: greenbank
client:
  name: greenbank-connector
  private_key: `+tc.keyPath+`
  certificate: `+tc.clientCertPath+`
server:
  dns: hub.vnext.example
  intermediate_certificate: `+tc.intermediatePath+`
auth:
  algorithm: SHA-512withRSA
log:
  level: error
`)

	out, err := executeCommand(rootCmd, "--config", cfgPath, "sign", "abc")
	require.NoError(t, err, out)
	sig := lastLine(out)
	resetFlags(rootCmd)

	out, err = executeCommand(rootCmd, "--config", cfgPath, "verify",
		"--signature", sig, "--fingerprint", hubFingerprint, "abc")
	require.NoError(t, err, out)
	require.Contains(t, out, string(crypto.AlgSHA512withRSA))
}

func TestF_Root_ConfigNotFound(t *testing.T) {
	tc := newTestContext(t)

	_, err := executeCommand(rootCmd, "--config", tc.path("missing.yaml"), "algorithm", "list")
	require.Error(t, err)
}

func TestF_Root_InvalidLogLevel(t *testing.T) {
	newTestContext(t)

	_, err := executeCommand(rootCmd, "--log-level", "verbose", "algorithm", "list")
	require.Error(t, err)
}

// =============================================================================
// Fingerprint Tests
// =============================================================================

func TestF_Fingerprint_Intermediate(t *testing.T) {
	tc := newTestContext(t)

	out, err := executeCommand(rootCmd, "fingerprint", tc.intermediatePath)
	require.NoError(t, err)
	require.Equal(t, hubFingerprint, strings.TrimSpace(out))
}

func TestF_Fingerprint_WithSubject(t *testing.T) {
	tc := newTestContext(t)

	out, err := executeCommand(rootCmd, "fingerprint", "--subject", tc.intermediatePath)
	require.NoError(t, err)
	require.Contains(t, out, "vNext Hub Intermediate CA")
	require.Contains(t, out, hubFingerprint)
}

func TestF_Fingerprint_NoSubjectKeyIdentifier(t *testing.T) {
	tc := newTestContext(t)

	out, err := executeCommand(rootCmd, "fingerprint", tc.noSKIPath)
	require.NoError(t, err)
	require.Contains(t, out, "no subject key identifier")
}

func TestF_Fingerprint_FileNotFound(t *testing.T) {
	tc := newTestContext(t)

	_, err := executeCommand(rootCmd, "fingerprint", tc.path("missing.pem"))
	require.Error(t, err)
}

func TestF_Fingerprint_NotACertificate(t *testing.T) {
	tc := newTestContext(t)

	_, err := executeCommand(rootCmd, "fingerprint", tc.keyPath)
	require.Error(t, err)
}

// =============================================================================
// Algorithm Tests
// =============================================================================

func TestF_Algorithm_List(t *testing.T) {
	newTestContext(t)

	out, err := executeCommand(rootCmd, "algorithm", "list")
	require.NoError(t, err)
	require.Contains(t, out, "ALGORITHM")
	for _, d := range crypto.Algorithms() {
		require.Contains(t, out, string(d.ID()))
	}
	require.NotContains(t, out, "Unsupported:")
}

func TestF_Algorithm_ListUnsupported(t *testing.T) {
	newTestContext(t)

	out, err := executeCommand(rootCmd, "algorithm", "list", "--unsupported")
	require.NoError(t, err)
	require.Contains(t, out, "Unsupported:")
	for _, id := range crypto.UnsupportedAlgorithms() {
		require.Contains(t, out, string(id))
	}
}

func TestF_Algorithm_Resolve(t *testing.T) {
	newTestContext(t)

	tests := []struct {
		input string
		want  crypto.AlgorithmID
	}{
		{"SHA256WITHRSA", crypto.AlgSHA256withRSA},
		{"1.2.840.113549.1.1.5", crypto.AlgSHA1withRSA},
		{"sha-1withrsa", crypto.AlgSHA1withRSA},
	}
	for _, tt := range tests {
		t.Run("[Functional] Resolve: "+tt.input, func(t *testing.T) {
			out, err := executeCommand(rootCmd, "algorithm", "resolve", tt.input)
			require.NoError(t, err)
			require.Contains(t, out, "Algorithm:   "+string(tt.want)+"\n")
		})
	}
}

func TestF_Algorithm_ResolveUnknown(t *testing.T) {
	newTestContext(t)

	_, err := executeCommand(rootCmd, "algorithm", "resolve", "NOT-A-REAL-ALG")
	var unknownErr *crypto.UnknownAlgorithmError
	require.True(t, errors.As(err, &unknownErr), "got %v", err)
}

// =============================================================================
// Serve Tests
// =============================================================================

func TestF_Serve_InvalidConfiguration(t *testing.T) {
	newTestContext(t)

	_, err := executeCommand(rootCmd, "serve", "--log-level", "error")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
	require.Contains(t, err.Error(), "fsp_id is required")
}

func TestU_Serve_ApplyFlags(t *testing.T) {
	newTestContext(t)
	_, err := executeCommand(rootCmd, "algorithm", "list")
	require.NoError(t, err)

	serveHost = "0.0.0.0"
	servePort = 9443
	serveMaxConnections = 0
	applyServeFlags()

	sc := serverConfig()
	require.Equal(t, "0.0.0.0:9443", sc.Address())
	require.Equal(t, 0, sc.MaxConnections)
	require.Equal(t, cfg.API.Timeouts.Shutdown, sc.ShutdownTimeout)
}

func TestU_Serve_FlagsUnsetKeepConfig(t *testing.T) {
	newTestContext(t)
	t.Setenv("VNEXT_API_PORT", "9001")
	_, err := executeCommand(rootCmd, "algorithm", "list")
	require.NoError(t, err)

	applyServeFlags()
	sc := serverConfig()
	require.Equal(t, "127.0.0.1:9001", sc.Address())
	require.Equal(t, 64, sc.MaxConnections)
}

func TestF_Root_EnvAuditLog(t *testing.T) {
	tc := newTestContext(t)
	logPath := tc.path("env-audit.jsonl")
	t.Setenv("VNEXT_AUDIT_LOG", logPath)

	tc.sign("abc")

	_, err := os.Stat(logPath)
	require.NoError(t, err)
}
