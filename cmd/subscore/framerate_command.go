package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subscore/internal/score"
)

func newFramerateCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "framerate <source> <check>",
		Short: "Check whether two frame rates are equivalent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source, err := score.ParseFramerate(args[0])
			if err != nil {
				return err
			}
			check, err := score.ParseFramerate(args[1])
			if err != nil {
				return err
			}
			equal := score.FramerateGroups(cfg.Framerate.EquivalentGroups).Equal(source, check)
			if jsonOutput {
				return writeJSON(cmd, map[string]any{
					"source": source,
					"check":  check,
					"equal":  equal,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v and %v equivalent: %s\n", source, check, yesNo(equal))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}
