package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// newCommitCmd creates the commit command
func newCommitCmd(flags *common.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit <repo_name> <base_url> <file_name> <commit_message> <active_path> <probe>",
		Short: "Commit every pending change and push the current branch",
		Long: `Make sure the working copy exists and contains <file_name>, then stage all
changes, commit them with <commit_message> and push the current branch.
A detached HEAD is moved onto a new branch first.`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := common.Invocation{RepoName: args[0], BaseURL: args[1], ActivePath: args[4], Probe: args[5]}
			return common.Run(cmd, flags, inv, func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome {
				return actions.CommitAction(ctx, actions.CommitOptions{Target: target, FileName: args[2], Message: args[3]})
			})
		},
	}

	return cmd
}
