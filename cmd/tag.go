package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omnihost-tools/omnihost-ctl/internal/audit"
	"github.com/omnihost-tools/omnihost-ctl/internal/errors"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage per-server tags",
}

var tagListCmd = &cobra.Command{
	Use:   "list <server>",
	Short: "List the tags attached to a server",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagList,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <server> <tag>",
	Short: "Attach a tag to a server",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagAdd,
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <server> <tag>",
	Short: "Detach a tag from a server",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagRm,
}

var tagFindCmd = &cobra.Command{
	Use:   "find <tag>",
	Short: "List every server carrying a tag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagFind,
}

func init() {
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagFindCmd)
	rootCmd.AddCommand(tagCmd)
}

func runTagList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	server := args[0]
	tags := s.ServerTags(server)
	if len(tags) == 0 {
		logInfo("No tags on %s", server)
		return nil
	}

	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

func runTagAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	server, tag := args[0], args[1]
	if err := s.AddServerTag(server, tag); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to tag %s", server), err)
	}

	recordAudit(s, audit.EventTag, server, fmt.Sprintf("added %s", tag))
	logSuccess("Tagged %s with %s", server, tag)
	return nil
}

func runTagRm(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	server, tag := args[0], args[1]
	if err := s.RemoveServerTag(server, tag); err != nil {
		return errors.ConfigError(fmt.Sprintf("failed to untag %s", server), err)
	}

	recordAudit(s, audit.EventTag, server, fmt.Sprintf("removed %s", tag))
	logSuccess("Removed tag %s from %s", tag, server)
	return nil
}

func runTagFind(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	tag := args[0]
	servers := s.ServersByTag(tag)
	if len(servers) == 0 {
		logInfo("No servers tagged %s", tag)
		return nil
	}

	for _, server := range servers {
		fmt.Println(server)
	}
	return nil
}
