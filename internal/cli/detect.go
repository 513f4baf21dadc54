package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitlingo.dev/gitlingo/internal/cli/common"
	"gitlingo.dev/gitlingo/internal/i18n"
	"gitlingo.dev/gitlingo/internal/output"
)

// newDetectCmd creates the detect command
func newDetectCmd(flags *common.GlobalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <text>...",
		Short: "Print the language tag gitlingo would use for a text",
		Long: `Print the language tag gitlingo would use for a text. Languages without a
message catalog are reported as en.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := i18n.NewDetector(flags.Base.Detect).Detect(strings.Join(args, " "))
			if err != nil && flags.Debug {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Language detection unavailable, using %s: %v\n", lang, err)
			}
			output.NewPrinter(cmd.OutOrStdout()).Plain(lang)
			return nil
		},
	}

	return cmd
}
