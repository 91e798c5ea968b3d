package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named snapshots of the preferences",
	Long: `A profile is a named TOML snapshot of the whole preferences
document, stored under the profiles directory next to the config file.
Exporting saves the current state; importing replaces it wholesale.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Snapshot the current preferences to a profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileExport,
}

var profileImportCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Replace the preferences with a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileImport,
}

var profileRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRm,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileExportCmd)
	profileCmd.AddCommand(profileImportCmd)
	profileCmd.AddCommand(profileRmCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	names, err := s.Profiles()
	if err != nil {
		return errors.ProfileError("list", err)
	}
	if len(names) == 0 {
		logInfo("No profiles stored. Create one with: omnihost profile export <name>")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runProfileExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name := args[0]
	if err := s.ExportProfile(name); err != nil {
		return errors.ProfileError("export", err)
	}

	recordAudit(s, audit.EventProfile, name, "exported")
	logSuccess("Preferences exported to profile %s", name)
	return nil
}

func runProfileImport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name := args[0]
	if err := s.ImportProfile(name); err != nil {
		return errors.ProfileError("import", err)
	}

	recordAudit(s, audit.EventProfile, name, "imported")
	logSuccess("Preferences replaced from profile %s", name)
	return nil
}

func runProfileRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name := args[0]
	if err := s.RemoveProfile(name); err != nil {
		return errors.ProfileError("remove", err)
	}

	recordAudit(s, audit.EventProfile, name, "removed")
	logSuccess("Profile %s removed", name)
	return nil
}
