// Package cli wires the gitlingo commands.
package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	return NewRootCmdWithOptions(version, runtime.Options{})
}

// NewRootCmdWithOptions creates the root command with base runtime options,
// letting callers replace collaborators such as the language detector.
func NewRootCmdWithOptions(version string, base runtime.Options) *cobra.Command {
	flags := &common.GlobalFlags{Base: base}

	rootCmd := &cobra.Command{
		Use:   "gitlingo",
		Short: "Multilingual helper for everyday git chores",
		Long: `gitlingo clones, syncs, commits and publishes git repositories and reports
every step in the language of the text you give it.

Each repository command takes an active path, the workspace that holds the
working copy and the activity log, and a probe text whose language selects
the messages.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "Path to a config file (default <active_path>/.gitlingo.json)")
	rootCmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Print debug messages")
	rootCmd.PersistentFlags().StringVar(&flags.TranslatorURL, "translator-url", "", "Translation service used for messages missing from the catalog")

	rootCmd.AddCommand(newSyncCmd(flags))
	rootCmd.AddCommand(newCheckoutCmd(flags))
	rootCmd.AddCommand(newCommitCmd(flags))
	rootCmd.AddCommand(newOpenCmd(flags))
	rootCmd.AddCommand(newBranchesCmd(flags))
	rootCmd.AddCommand(newPushBranchCmd(flags))
	rootCmd.AddCommand(newDetectCmd(flags))

	return rootCmd
}
