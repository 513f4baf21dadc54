package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// newOpenCmd creates the open command
func newOpenCmd(flags *common.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <repo_name> <base_url> <file_name> <active_path> <probe>",
		Short: "Find a file in the working copy and open it in the editor",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := common.Invocation{RepoName: args[0], BaseURL: args[1], ActivePath: args[3], Probe: args[4]}
			return common.Run(cmd, flags, inv, func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome {
				return actions.OpenAction(ctx, actions.OpenOptions{Target: target, FileName: args[2]})
			})
		},
	}

	return cmd
}
