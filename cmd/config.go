package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/config"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change scalar preferences",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current preferences",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configShowJSON bool

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		fmt.Println(s.Path())
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one preference value",
	Long:  "Print one preference value.\n\nKeys: default-server, output-mode, parallel, timeout, audit",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one preference value",
	Long:  "Change one preference value.\n\nKeys: default-server, output-mode, parallel, timeout, audit",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "Output the raw document as JSON")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	// openStore already warned about a corrupt file; show the defaults.
	doc, _ := s.Load()

	if configShowJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.ConfigError("failed to marshal config", err)
		}
		fmt.Println(string(data))
		return nil
	}

	defaultServer := doc.DefaultServer
	if defaultServer == "" {
		defaultServer = "(not set)"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	fmt.Fprintln(w, "---\t-----")
	fmt.Fprintf(w, "default-server\t%s\n", defaultServer)
	fmt.Fprintf(w, "output-mode\t%s\n", doc.OutputMode)
	fmt.Fprintf(w, "parallel\t%d\n", doc.ParallelConnections)
	fmt.Fprintf(w, "timeout\t%d\n", doc.Timeout)
	fmt.Fprintf(w, "audit\t%t\n", doc.AuditEnabled)
	fmt.Fprintf(w, "groups\t%d\n", len(doc.Groups))
	fmt.Fprintf(w, "server-aliases\t%d\n", len(doc.Aliases))
	fmt.Fprintf(w, "command-aliases\t%d\n", len(doc.CommandAliases))
	return w.Flush()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	switch args[0] {
	case "default-server":
		fmt.Println(s.DefaultServer())
	case "output-mode":
		fmt.Println(s.OutputMode())
	case "parallel":
		fmt.Println(s.ParallelConnections())
	case "timeout":
		fmt.Println(s.Timeout())
	case "audit":
		fmt.Println(s.AuditEnabled())
	default:
		return errors.ValidationError(fmt.Sprintf("unknown preference key: %s", args[0]))
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]

	switch key {
	case "default-server":
		err = s.SetDefaultServer(value)
	case "output-mode":
		if value != config.OutputModeNormal && value != config.OutputModeCompact && value != config.OutputModeSilent {
			logWarning("Unknown output mode %q (known: normal, compact, silent); storing it anyway", value)
		}
		err = s.SetOutputMode(value)
	case "parallel":
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return errors.ValidationError(fmt.Sprintf("parallel must be an integer: %s", value))
		}
		err = s.SetParallelConnections(n)
	case "timeout":
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return errors.ValidationError(fmt.Sprintf("timeout must be an integer: %s", value))
		}
		err = s.SetTimeout(n)
	case "audit":
		b, convErr := strconv.ParseBool(value)
		if convErr != nil {
			return errors.ValidationError(fmt.Sprintf("audit must be a boolean: %s", value))
		}
		err = s.SetAuditEnabled(b)
	default:
		return errors.ValidationError(fmt.Sprintf("unknown preference key: %s", key))
	}

	if err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to set %s", key), err)
	}

	recordAudit(s, audit.EventPreference, key, value)
	logSuccess("%s set to %s", key, value)
	return nil
}
