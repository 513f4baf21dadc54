package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// newSyncCmd creates the sync command
func newSyncCmd(flags *common.GlobalFlags) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "sync <repo_name> <base_url> <active_path> <probe>",
		Short: "Clone a repository or bring an existing working copy up to date",
		Long: `Clone <base_url>/<repo_name>.git into <active_path>/<repo_name>, or fetch and
pull when the working copy already exists. A directory that is not a git
working copy is deleted and re-cloned after confirmation.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := common.Invocation{RepoName: args[0], BaseURL: args[1], ActivePath: args[2], Probe: args[3]}
			return common.Run(cmd, flags, inv, func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome {
				return actions.SyncAction(ctx, actions.SyncOptions{Target: target, Branch: branch})
			})
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "Branch to reset to when a pull fails (default from config, Feature/Demo)")

	return cmd
}
