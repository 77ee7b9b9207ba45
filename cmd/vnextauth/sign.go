package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mifos/vnext-auth/internal/auth"
)

var signCmd = &cobra.Command{
	Use:   "sign <challenge>",
	Short: "Sign a hub challenge",
	Long: `Sign a challenge issued by the hub with the client private key.

The signature is printed in the hub transport encoding (Base64 over the
UTF-8 form of the Latin-1 signature bytes).

Examples:
  vnextauth sign --config vnext.yaml 9f4c2e
  vnextauth sign --key client.key --intermediate hub-ca.pem --cert client.pem 9f4c2e`,
	Args: cobra.ExactArgs(1),
	RunE: runSign,
}

func init() {
	addMaterialFlags(signCmd)
}

func runSign(cmd *cobra.Command, args []string) error {
	a, err := loadAuthenticator()
	if err != nil {
		return err
	}

	ctx := auth.WithRequestID(context.Background(), uuid.NewString())
	sig, err := a.SignContext(ctx, args[0])
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), sig)
	return nil
}
