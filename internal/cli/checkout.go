package cli

import (
	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/actions"
	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/runtime"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(flags *common.GlobalFlags) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "checkout <repo_name> <base_url> <branch_name> <active_path> <probe>",
		Short: "Switch the working copy to a branch, falling back to main",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv := common.Invocation{RepoName: args[0], BaseURL: args[1], ActivePath: args[3], Probe: args[4]}
			return common.Run(cmd, flags, inv, func(ctx *runtime.Context, target actions.RepoTarget) actions.Outcome {
				return actions.CheckoutAction(ctx, actions.CheckoutOptions{Target: target, Branch: args[2], Fallback: fallback})
			})
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Branch to check out when the requested one fails (default from config, main)")

	return cmd
}
