package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mifos/vnext-auth/internal/x509util"
)

var fingerprintShowSubject bool

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <certificate>",
	Short: "Print the public key fingerprint of a certificate",
	Long: `Print the public key fingerprint of a certificate.

The fingerprint is the lowercase hex Subject Key Identifier of the
certificate, as compared against the hub's pubKeyFingerprint claim.
PEM and DER inputs are accepted.

Examples:
  vnextauth fingerprint hub-intermediate.pem
  vnextauth fingerprint --subject hub-intermediate.der`,
	Args: cobra.ExactArgs(1),
	RunE: runFingerprint,
}

func init() {
	fingerprintCmd.Flags().BoolVar(&fingerprintShowSubject, "subject", false, "Also print the certificate subject")
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	cert, err := x509util.LoadCertificate(args[0])
	if err != nil {
		return err
	}

	fp, err := x509util.Fingerprint(cert)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if fingerprintShowSubject {
		_, _ = fmt.Fprintf(w, "Subject:     %s\n", cert.Subject())
		_, _ = fmt.Fprintf(w, "Fingerprint: %s\n", fingerprintOrNone(fp))
		return nil
	}
	_, _ = fmt.Fprintln(w, fingerprintOrNone(fp))
	return nil
}

// fingerprintOrNone renders an absent Subject Key Identifier.
func fingerprintOrNone(fp string) string {
	if fp == "" {
		return "(no subject key identifier)"
	}
	return fp
}
