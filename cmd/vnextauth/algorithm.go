package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mifos/vnext-auth/internal/crypto"
)

var algorithmCmd = &cobra.Command{
	Use:   "algorithm",
	Short: "Signature algorithm registry",
	Long: `Inspect the signature algorithm registry.

Commands:
  list      List canonical algorithms
  resolve   Resolve a name, alias or OID to its canonical algorithm`,
}

var algorithmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List canonical algorithms",
	Args:  cobra.NoArgs,
	RunE:  runAlgorithmList,
}

var algorithmResolveCmd = &cobra.Command{
	Use:   "resolve <name-or-oid>",
	Short: "Resolve an algorithm name, alias or OID",
	Long: `Resolve an algorithm name, alias or OID to its canonical algorithm.

Examples:
  vnextauth algorithm resolve SHA256WITHRSA
  vnextauth algorithm resolve 1.2.840.113549.1.1.5
  vnextauth algorithm resolve SHA1withRSA/ISO9796-2`,
	Args: cobra.ExactArgs(1),
	RunE: runAlgorithmResolve,
}

var algorithmListUnsupported bool

func init() {
	algorithmListCmd.Flags().BoolVar(&algorithmListUnsupported, "unsupported", false,
		"Also list recognized algorithms that cannot be used")

	algorithmCmd.AddCommand(algorithmListCmd)
	algorithmCmd.AddCommand(algorithmResolveCmd)
}

func runAlgorithmList(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ALGORITHM\tSCHEME\tDIGEST\tOID")
	for _, d := range crypto.Algorithms() {
		oid := "-"
		if d.OID() != nil {
			oid = d.OID().String()
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID(), d.Scheme(), d.Digest(), oid)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if algorithmListUnsupported {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\nUnsupported:")
		for _, id := range crypto.UnsupportedAlgorithms() {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", id)
		}
	}
	return nil
}

func runAlgorithmResolve(cmd *cobra.Command, args []string) error {
	d, err := crypto.ResolveAlgorithm(args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Algorithm:   %s\n", d.ID())
	_, _ = fmt.Fprintf(w, "Scheme:      %s\n", d.Scheme())
	_, _ = fmt.Fprintf(w, "Digest:      %s\n", d.Digest())
	if d.OID() != nil {
		_, _ = fmt.Fprintf(w, "OID:         %s\n", d.OID())
	}
	_, _ = fmt.Fprintf(w, "Description: %s\n", d.Description())
	if aliases := crypto.Aliases(d.ID()); len(aliases) > 0 {
		_, _ = fmt.Fprintf(w, "Aliases:     %s\n", strings.Join(aliases, ", "))
	}
	return nil
}
