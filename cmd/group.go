package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage named server groups",
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups and their members",
	Args:  cobra.NoArgs,
	RunE:  runGroupList,
}

var groupShowCmd = &cobra.Command{
	Use:   "show <group>",
	Short: "List the members of a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupShow,
}

var groupSetCmd = &cobra.Command{
	Use:   "set <group> <server>...",
	Short: "Create a group or replace its member list",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runGroupSet,
}

var groupRmCmd = &cobra.Command{
	Use:   "rm <group>",
	Short: "Delete a group",
	Args:  cobra.ExactArgs(1),
	RunE:  runGroupRm,
}

var groupAddCmd = &cobra.Command{
	Use:   "add <group> <server>",
	Short: "Add one server to a group",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupAdd,
}

var groupRemoveCmd = &cobra.Command{
	Use:   "remove <group> <server>",
	Short: "Remove one server from a group",
	Args:  cobra.ExactArgs(2),
	RunE:  runGroupRemove,
}

func init() {
	groupCmd.AddCommand(groupListCmd)
	groupCmd.AddCommand(groupShowCmd)
	groupCmd.AddCommand(groupSetCmd)
	groupCmd.AddCommand(groupRmCmd)
	groupCmd.AddCommand(groupAddCmd)
	groupCmd.AddCommand(groupRemoveCmd)
	rootCmd.AddCommand(groupCmd)
}

func runGroupList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	groups := s.Groups()
	if len(groups) == 0 {
		logInfo("No groups defined. Create one with: omnihost group set <group> <server>...")
		return nil
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tSERVERS\tMEMBERS")
	fmt.Fprintln(w, "-----\t-------\t-------")
	for _, name := range names {
		members := groups[name]
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, len(members), strings.Join(members, ", "))
	}
	return w.Flush()
}

func runGroupShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name := args[0]
	members, ok := s.Groups()[name]
	if !ok {
		return errors.GroupNotFound(name)
	}

	for _, server := range members {
		fmt.Println(server)
	}
	return nil
}

func runGroupSet(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name, servers := args[0], args[1:]
	if err := s.SetGroup(name, servers); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to save group %s", name), err)
	}

	recordAudit(s, audit.EventGroup, name, fmt.Sprintf("set members: %s", strings.Join(servers, ", ")))
	logSuccess("Group %s now has %d servers", name, len(servers))
	return nil
}

func runGroupRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name := args[0]
	if err := s.RemoveGroup(name); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to remove group %s", name), err)
	}

	recordAudit(s, audit.EventGroup, name, "removed")
	logSuccess("Group %s removed", name)
	return nil
}

func runGroupAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name, server := args[0], args[1]
	if err := s.AddServerToGroup(name, server); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to update group %s", name), err)
	}

	recordAudit(s, audit.EventGroup, name, fmt.Sprintf("added %s", server))
	logSuccess("Added %s to group %s", server, name)
	return nil
}

func runGroupRemove(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	name, server := args[0], args[1]
	if err := s.RemoveServerFromGroup(name, server); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to update group %s", name), err)
	}

	recordAudit(s, audit.EventGroup, name, fmt.Sprintf("removed %s", server))
	logSuccess("Removed %s from group %s", server, name)
	return nil
}
