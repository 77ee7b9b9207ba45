package main

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/mifos/vnext-auth/internal/audit"
)

const hubFingerprint = "5fa3019ce2447b10d03e816a0bcd92274fee58b6"

var hubSKI = []byte{0x5f, 0xa3, 0x01, 0x9c, 0xe2, 0x44, 0x7b, 0x10, 0xd0, 0x3e, 0x81, 0x6a, 0x0b, 0xcd, 0x92, 0x27, 0x4f, 0xee, 0x58, 0xb6}

// executeCommand executes a Cobra command with the given args and returns output.
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its subcommands to its default
// value and clears the changed state left by a previous execution.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// testContext holds test resources.
type testContext struct {
	t       *testing.T
	tempDir string

	keyPath          string
	intermediatePath string
	clientCertPath   string
	noSKIPath        string
}

// newTestContext writes a hub intermediate CA, its key and a client
// certificate into a temp directory. The key written is the hub key, so
// signatures produced by the CLI verify against the intermediate.
func newTestContext(t *testing.T) *testContext {
	t.Helper()
	resetFlags(rootCmd)
	for _, name := range []string{
		"VNEXT_AUDIT_LOG", "VNEXT_ALGORITHM", "VNEXT_PRIVATE_KEY",
		"VNEXT_INTERMEDIATE_CERTIFICATE", "VNEXT_CLIENT_CERTIFICATE",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	t.Cleanup(func() {
		_ = audit.Close()
		resetFlags(rootCmd)
	})

	tc := &testContext{t: t, tempDir: t.TempDir()}

	hubKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	clientKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	hubTmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "vNext Hub Intermediate CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		SubjectKeyId:          hubSKI,
	}
	hubDER, err := x509.CreateCertificate(rand.Reader, hubTmpl, hubTmpl, &hubKey.PublicKey, hubKey)
	require.NoError(t, err)

	clientTmpl := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "fsp-greenbank"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	clientDER, err := x509.CreateCertificate(rand.Reader, clientTmpl, hubTmpl, &clientKey.PublicKey, hubKey)
	require.NoError(t, err)

	noSKITmpl := &x509.Certificate{
		SerialNumber: big.NewInt(3),
		Subject:      pkix.Name{CommonName: "no-ski"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
	}
	noSKIDER, err := x509.CreateCertificate(rand.Reader, noSKITmpl, noSKITmpl, &hubKey.PublicKey, hubKey)
	require.NoError(t, err)

	keyDER, err := x509.MarshalPKCS8PrivateKey(hubKey)
	require.NoError(t, err)

	tc.keyPath = tc.writeFile("hub.key", string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})))
	tc.intermediatePath = tc.writeFile("hub-intermediate.pem", string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: hubDER})))
	tc.clientCertPath = tc.writeFile("client.der", string(clientDER))
	tc.noSKIPath = tc.writeFile("no-ski.pem", string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: noSKIDER})))
	return tc
}

// path returns a path within the temp directory.
func (tc *testContext) path(name string) string {
	return filepath.Join(tc.tempDir, name)
}

// writeFile writes content to a file in the temp directory.
func (tc *testContext) writeFile(name, content string) string {
	tc.t.Helper()
	path := tc.path(name)
	require.NoError(tc.t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// materialArgs returns the key and certificate flags for sign and verify.
func (tc *testContext) materialArgs() []string {
	return []string{
		"--key", tc.keyPath,
		"--intermediate", tc.intermediatePath,
		"--cert", tc.clientCertPath,
		"--log-level", "error",
	}
}

// sign runs the sign command and returns the printed signature.
func (tc *testContext) sign(challenge string, extra ...string) string {
	tc.t.Helper()
	args := append([]string{"sign"}, tc.materialArgs()...)
	args = append(args, extra...)
	args = append(args, challenge)
	out, err := executeCommand(rootCmd, args...)
	require.NoError(tc.t, err, out)
	resetFlags(rootCmd)
	return lastLine(out)
}

func lastLine(s string) string {
	lines := bytes.Split(bytes.TrimSpace([]byte(s)), []byte("\n"))
	return string(lines[len(lines)-1])
}
