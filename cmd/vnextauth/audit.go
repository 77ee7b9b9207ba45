package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mifos/vnext-auth/internal/audit"
)

// Audit command flags
var (
	auditLogFile  string
	auditTailNum  int
	auditShowJSON bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit log operations",
	Long: `Audit log operations.

Commands:
  verify   Verify the hash chain of an audit log
  tail     Show the most recent audit events`,
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify audit log integrity",
	Long: `Verify the hash chain of an audit log.

Each event is chained to its predecessor by SHA-256. Any modification,
insertion or removal of a record breaks the chain.

Examples:
  vnextauth audit verify --log audit.jsonl`,
	Args: cobra.NoArgs,
	RunE: runAuditVerify,
}

var auditTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Show recent audit events",
	Long: `Show the most recent events of an audit log.

Examples:
  vnextauth audit tail --log audit.jsonl
  vnextauth audit tail --log audit.jsonl -n 50 --json`,
	Args: cobra.NoArgs,
	RunE: runAuditTail,
}

func init() {
	auditVerifyCmd.Flags().StringVar(&auditLogFile, "log", "", "Path to audit log file (required)")
	_ = auditVerifyCmd.MarkFlagRequired("log")

	auditTailCmd.Flags().StringVar(&auditLogFile, "log", "", "Path to audit log file (required)")
	_ = auditTailCmd.MarkFlagRequired("log")
	auditTailCmd.Flags().IntVarP(&auditTailNum, "num", "n", 10, "Number of events to show")
	auditTailCmd.Flags().BoolVar(&auditShowJSON, "json", false, "Output as JSON")

	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTailCmd)
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "Verifying audit log: %s\n\n", auditLogFile)

	report, err := audit.VerifyChain(auditLogFile)
	if err != nil {
		_, _ = fmt.Fprintf(w, "VERIFICATION FAILED\n")
		if report != nil {
			_, _ = fmt.Fprintf(w, "  Valid events: %d\n", report.Events)
		}
		_, _ = fmt.Fprintf(w, "  Error: %s\n", err)
		return fmt.Errorf("audit log verification failed: %w", err)
	}

	_, _ = fmt.Fprintf(w, "VERIFICATION PASSED\n")
	_, _ = fmt.Fprintf(w, "  Total events: %d\n", report.Events)
	_, _ = fmt.Fprintf(w, "  Failures:     %d\n", report.Failures)
	if report.Events > 0 {
		_, _ = fmt.Fprintf(w, "  First event:  %s\n", report.First)
		_, _ = fmt.Fprintf(w, "  Last event:   %s\n", report.Last)
	}
	_, _ = fmt.Fprintf(w, "  Last hash:    %s\n", report.LastHash)
	_, _ = fmt.Fprintf(w, "  Hash chain:   VALID\n")

	types := make([]string, 0, len(report.ByType))
	for t := range report.ByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		_, _ = fmt.Fprintf(w, "    %-18s %d\n", t, report.ByType[audit.EventType(t)])
	}
	return nil
}

func runAuditTail(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(auditLogFile)
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	w := cmd.OutOrStdout()
	var lines [][]byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(w, "Audit log is empty")
		return nil
	}

	if auditTailNum > 0 && len(lines) > auditTailNum {
		lines = lines[len(lines)-auditTailNum:]
	}

	if auditShowJSON {
		_, _ = fmt.Fprintln(w, "[")
		for i, line := range lines {
			if i > 0 {
				_, _ = fmt.Fprintln(w, ",")
			}
			_, _ = w.Write(line)
		}
		_, _ = fmt.Fprintln(w, "\n]")
		return nil
	}

	for _, line := range lines {
		var event audit.Event
		if err := json.Unmarshal(line, &event); err != nil {
			_, _ = fmt.Fprintf(w, "  [ERROR] %s\n", err)
			continue
		}
		printEvent(w, &event)
	}
	return nil
}

func printEvent(w io.Writer, e *audit.Event) {
	resultIcon := "✓"
	if e.Result == audit.ResultFailure {
		resultIcon = "✗"
	}

	_, _ = fmt.Fprintf(w, "[%s] %s %s\n", e.Timestamp, resultIcon, e.EventType)
	_, _ = fmt.Fprintf(w, "    Actor:  %s@%s\n", e.Actor.ID, e.Actor.Host)

	if e.Object.Type != "" {
		_, _ = fmt.Fprintf(w, "    Object: %s", e.Object.Type)
		if e.Object.Subject != "" {
			_, _ = fmt.Fprintf(w, " subject=%s", e.Object.Subject)
		}
		if e.Object.Serial != "" {
			_, _ = fmt.Fprintf(w, " serial=%s", e.Object.Serial)
		}
		if e.Object.Path != "" {
			_, _ = fmt.Fprintf(w, " path=%s", e.Object.Path)
		}
		_, _ = fmt.Fprintln(w)
	}

	c := e.Context
	if c.Algorithm != "" || c.Fingerprint != "" || c.Reason != "" || c.RequestID != "" {
		_, _ = fmt.Fprint(w, "    Context:")
		if c.Algorithm != "" {
			_, _ = fmt.Fprintf(w, " algorithm=%s", c.Algorithm)
		}
		if c.Fingerprint != "" {
			_, _ = fmt.Fprintf(w, " fingerprint=%s", c.Fingerprint)
		}
		if c.Reason != "" {
			_, _ = fmt.Fprintf(w, " reason=%s", c.Reason)
		}
		if c.RequestID != "" {
			_, _ = fmt.Fprintf(w, " request=%s", c.RequestID)
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintln(w)
}
