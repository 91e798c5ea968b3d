package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/logging"
)

var (
	verbose   bool
	jsonLogs  bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "omnihost",
	Short: "OmniHost fleet preferences CLI",
	Long: `omnihost manages the local preferences behind the OmniHost fleet tool.

Preferences live in a single JSON document (~/.omnihost/config.json):
  - Default server and output mode
  - Named server groups
  - Per-server tags
  - Server and command aliases`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonLogs, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "log-json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default ~/.omnihost)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
