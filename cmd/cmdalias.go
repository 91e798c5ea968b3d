package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

var cmdAliasCmd = &cobra.Command{
	Use:   "cmd-alias",
	Short: "Manage command aliases",
}

var cmdAliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all command aliases",
	Args:  cobra.NoArgs,
	RunE:  runCmdAliasList,
}

var cmdAliasShowCmd = &cobra.Command{
	Use:   "show <alias>",
	Short: "Print the command behind an alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runCmdAliasShow,
}

var cmdAliasSetCmd = &cobra.Command{
	Use:   "set <alias> -- <command>...",
	Short: "Create or replace a command alias",
	Long: `Create or replace a command alias. The command is given as
arguments after --, quoted as needed, and stored as a single shell
string:

  omnihost cmd-alias set deploy -- git pull origin main`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCmdAliasSet,
}

var cmdAliasRmCmd = &cobra.Command{
	Use:   "rm <alias>",
	Short: "Delete a command alias",
	Args:  cobra.ExactArgs(1),
	RunE:  runCmdAliasRm,
}

var cmdAliasExpandCmd = &cobra.Command{
	Use:   "expand <alias> [arg]...",
	Short: "Print the argv an alias expands to",
	Long: `Expand a command alias into its argument vector, appending any
extra arguments, one per line. This is what the fleet front end
executes on the resolved server.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCmdAliasExpand,
}

func init() {
	cmdAliasCmd.AddCommand(cmdAliasListCmd)
	cmdAliasCmd.AddCommand(cmdAliasShowCmd)
	cmdAliasCmd.AddCommand(cmdAliasSetCmd)
	cmdAliasCmd.AddCommand(cmdAliasRmCmd)
	cmdAliasCmd.AddCommand(cmdAliasExpandCmd)
	rootCmd.AddCommand(cmdAliasCmd)
}

func runCmdAliasList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	aliases := s.CommandAliases()
	if len(aliases) == 0 {
		logInfo("No command aliases defined. Create one with: omnihost cmd-alias set <alias> -- <command>")
		return nil
	}

	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ALIAS\tCOMMAND")
	fmt.Fprintln(w, "-----\t-------")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, aliases[name])
	}
	return w.Flush()
}

func runCmdAliasShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	alias := args[0]
	command, ok := s.CommandAlias(alias)
	if !ok {
		return errors.CommandAliasNotFound(alias)
	}

	fmt.Println(command)
	return nil
}

func runCmdAliasSet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	alias := args[0]
	command := shellquote.Join(args[1:]...)
	if err := s.SetCommandAlias(alias, command); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to save command alias %s", alias), err)
	}

	recordAudit(s, audit.EventCommandAlias, alias, command)
	logSuccess("Command alias %s -> %s", alias, command)
	return nil
}

func runCmdAliasRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	alias := args[0]
	if _, ok := s.CommandAlias(alias); !ok {
		return errors.CommandAliasNotFound(alias)
	}
	if err := s.RemoveCommandAlias(alias); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to remove command alias %s", alias), err)
	}

	recordAudit(s, audit.EventCommandAlias, alias, "removed")
	logSuccess("Command alias %s removed", alias)
	return nil
}

func runCmdAliasExpand(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	alias := args[0]
	command, ok := s.CommandAlias(alias)
	if !ok {
		return errors.CommandAliasNotFound(alias)
	}

	argv, err := shellquote.Split(command)
	if err != nil {
		return errors.ValidationError(fmt.Sprintf("alias %s does not parse as a command: %v", alias, err))
	}
	argv = append(argv, args[1:]...)

	for _, arg := range argv {
		fmt.Println(arg)
	}
	return nil
}
