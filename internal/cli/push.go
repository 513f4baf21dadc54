package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// newPushBranchCmd creates the push-branch command
func newPushBranchCmd(flags *common.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push-branch <repo_name> <base_url> <branch_name> <active_path> <probe>",
		Short: "Push a branch and set its upstream",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := common.Invocation{RepoName: args[0], BaseURL: args[1], ActivePath: args[3], Probe: args[4]}
			return common.Run(cmd, flags, inv, func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome {
				return actions.PushBranchAction(ctx, actions.PushBranchOptions{Target: target, Branch: args[2]})
			})
		},
	}

	return cmd
}
