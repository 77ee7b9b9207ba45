package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mifos/vnext-auth/internal/auth"
)

// Verify command flags
var (
	verifySignature   string
	verifyFingerprint string
	verifyNonce       string
)

var verifyCmd = &cobra.Command{
	Use:   "verify <original>",
	Short: "Verify a hub response",
	Long: `Verify a hub response to a challenge.

The response is accepted only if the claimed fingerprint equals the Subject
Key Identifier of the hub intermediate CA and the signature is a valid
signature of the original challenge under the intermediate CA public key.

The command exits with an error when verification fails.

Examples:
  vnextauth verify --config vnext.yaml \
    --signature wqvCtw== --fingerprint a1b2c3d4 9f4c2e`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	addMaterialFlags(verifyCmd)
	verifyCmd.Flags().StringVar(&verifySignature, "signature", "", "Signed client id returned by the hub (required)")
	verifyCmd.Flags().StringVar(&verifyFingerprint, "fingerprint", "", "Public key fingerprint claimed by the hub (required)")
	verifyCmd.Flags().StringVar(&verifyNonce, "nonce", "", "Challenge nonce returned by the hub")
	_ = verifyCmd.MarkFlagRequired("signature")
	_ = verifyCmd.MarkFlagRequired("fingerprint")
}

func runVerify(cmd *cobra.Command, args []string) error {
	a, err := loadAuthenticator()
	if err != nil {
		return err
	}

	ctx := auth.WithRequestID(context.Background(), uuid.NewString())
	out := a.VerifyContext(ctx, args[0], auth.SignedResponse{
		Nonce:       verifyNonce,
		Signature:   verifySignature,
		Fingerprint: verifyFingerprint,
	})

	w := cmd.OutOrStdout()
	if !out.Verified {
		_, _ = fmt.Fprintf(w, "VERIFICATION FAILED\n")
		_, _ = fmt.Fprintf(w, "  Reason: %s\n", out.Reason)
		if out.Detail != "" {
			_, _ = fmt.Fprintf(w, "  Detail: %s\n", out.Detail)
		}
		return fmt.Errorf("hub response verification failed: %s", out.Reason)
	}

	_, _ = fmt.Fprintf(w, "VERIFICATION PASSED\n")
	_, _ = fmt.Fprintf(w, "  Algorithm:   %s\n", a.Algorithm())
	_, _ = fmt.Fprintf(w, "  Fingerprint: %s\n", verifyFingerprint)
	return nil
}
