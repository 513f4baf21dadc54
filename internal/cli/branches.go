package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// newBranchesCmd creates the branches command
func newBranchesCmd(flags *common.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branches <repo_name> <base_url> <active_path> <probe>",
		Short: "List local and remote-tracking branches",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := common.Invocation{RepoName: args[0], BaseURL: args[1], ActivePath: args[2], Probe: args[3]}
			return common.Run(cmd, flags, inv, func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome {
				outcome, _ := actions.BranchesAction(ctx, actions.BranchesOptions{Target: target})
				return outcome
			})
		},
	}

	return cmd
}
