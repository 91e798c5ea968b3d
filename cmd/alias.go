package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage server aliases",
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all server aliases",
	Args:  cobra.NoArgs,
	RunE:  runAliasList,
}

var aliasSetCmd = &cobra.Command{
	Use:   "set <alias> <server>",
	Short: "Create or replace a server alias",
	Args:  cobra.ExactArgs(2),
	RunE:  runAliasSet,
}

var aliasRmCmd = &cobra.Command{
	Use:   "rm <alias>",
	Short: "Delete a server alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runAliasRm,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [server]",
	Short: "Resolve a server name through aliases and the default",
	Long: `Resolve a server name the way every fleet command does:
a known alias resolves to its target, anything else passes through
unchanged, and no argument at all falls back to the default server.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	aliasCmd.AddCommand(aliasListCmd)
	aliasCmd.AddCommand(aliasSetCmd)
	aliasCmd.AddCommand(aliasRmCmd)
	rootCmd.AddCommand(aliasCmd)
	rootCmd.AddCommand(resolveCmd)
}

func runAliasList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	aliases := s.ServerAliases()
	if len(aliases) == 0 {
		logInfo("No server aliases defined. Create one with: omnihost alias set <alias> <server>")
		return nil
	}

	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tSERVER")
	fmt.Fprintln(w, "-----\t------")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, aliases[name])
	}
	return w.Flush()
}

func runAliasSet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	alias, server := args[0], args[1]
	if err := s.SetServerAlias(alias, server); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to save alias %s", alias), err)
	}

	recordAudit(s, audit.EventServerAlias, alias, fmt.Sprintf("set to %s", server))
	logSuccess("Alias %s -> %s", alias, server)
	return nil
}

func runAliasRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	alias := args[0]
	if _, ok := s.ServerAlias(alias); !ok {
		return errors.AliasNotFound(alias)
	}
	if err := s.RemoveServerAlias(alias); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to remove alias %s", alias), err)
	}

	recordAudit(s, audit.EventServerAlias, alias, "removed")
	logSuccess("Alias %s removed", alias)
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	server := s.ResolveServer(input)
	if server == "" {
		logWarning("No server given and no default server configured")
		return errors.ValidationError("nothing to resolve")
	}

	fmt.Println(server)
	return nil
}
