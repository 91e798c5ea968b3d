package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
)

var auditLogCmd = &cobra.Command{
	Use:   "audit-log",
	Short: "Display the preference mutation trail",
	Args:  cobra.NoArgs,
	RunE:  runAuditLog,
}

var auditLogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the mutation trail",
	Args:  cobra.NoArgs,
	RunE:  runAuditLogClear,
}

var auditLogJSON bool

func init() {
	auditLogCmd.Flags().BoolVar(&auditLogJSON, "json", false, "Output events as JSON lines")
	auditLogCmd.AddCommand(auditLogClearCmd)
	rootCmd.AddCommand(auditLogCmd)
}

func runAuditLog(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	auditLogger := audit.NewLogger(s.Dir())
	events, err := auditLogger.Events()
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		logInfo("No audit events recorded")
		return nil
	}

	for _, e := range events {
		if auditLogJSON {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Println(string(data))
		} else {
			ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
			if e.Details != "" {
				fmt.Printf("[%s] %-14s %s (%s)\n", ts, e.Type, e.Target, e.Details)
			} else {
				fmt.Printf("[%s] %-14s %s\n", ts, e.Type, e.Target)
			}
		}
	}

	return nil
}

func runAuditLogClear(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	if err := audit.NewLogger(s.Dir()).Clear(); err != nil {
		return fmt.Errorf("failed to clear audit log: %w", err)
	}

	logSuccess("Audit trail cleared")
	return nil
}
