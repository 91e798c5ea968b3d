package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
	"github.com/omnihost-tools/omnihost-ctl/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a server from the configured fleet",
	Long: `Open an interactive picker over every server the config knows
about (group members, tagged servers, alias targets, and the default
server) and print the selection.`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

var (
	pickSetDefault bool
	pickPlain      bool
)

func init() {
	pickCmd.Flags().BoolVar(&pickSetDefault, "set-default", false, "Store the selection as the default server")
	pickCmd.Flags().BoolVar(&pickPlain, "plain", false, "Print a non-interactive listing instead")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	doc, _ := s.Load()
	entries := tui.BuildEntries(doc)

	if pickPlain {
		fmt.Print(tui.SimplePicker(entries))
		return nil
	}

	if len(entries) == 0 {
		logInfo("No servers configured. Add some with: omnihost group add <group> <server>")
		return nil
	}

	server, err := tui.RunPicker(entries)
	if err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}
	if server == "" {
		return nil
	}

	if pickSetDefault {
		if err := s.SetDefaultServer(server); err != nil {
			return errors.ConfigError("failed to set default server", err)
		}
		recordAudit(s, audit.EventPreference, "default-server", server)
		logSuccess("Default server set to %s", server)
		return nil
	}

	fmt.Println(server)
	return nil
}
