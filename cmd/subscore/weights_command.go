package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"subscore/internal/profiles"
	"subscore/internal/score"
)

func newWeightsCommand(ctx *commandContext) *cobra.Command {
	var (
		videoKind  string
		noProfiles bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show the effective weight table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			video, err := parseVideo(videoKind, false)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table := baseWeights(cfg, video)
			if cfg.Profiles.Enabled && !noProfiles {
				runCtx, logger, err := ctx.commandLogger(cmd)
				if err != nil {
					return err
				}
				err = ctx.withStore(runCtx, func(store *profiles.Store) error {
					scorer, err := profiles.LoadScorer(runCtx, store, table, video, logger)
					if err != nil {
						return err
					}
					table = scorer.Weights()
					return nil
				})
				if err != nil {
					return err
				}
			}

			// Known kinds are listed even at weight 0 so identifiers such as
			// imdb_id show up alongside the kinds they expand into.
			kinds := score.NewMatchSet(score.KnownKinds...)
			for kind := range table {
				kinds.Add(kind)
			}
			if jsonOutput {
				out := make(map[string]int, kinds.Len())
				for kind := range kinds {
					out[string(kind)] = table.Weight(kind)
				}
				return writeJSON(cmd, out)
			}
			rows := make([][]string, 0, kinds.Len())
			for _, kind := range kinds.Sorted() {
				rows = append(rows, []string{displayKind(string(kind)), strconv.Itoa(table.Weight(kind))})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Match", "Weight"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	cmd.Flags().StringVar(&videoKind, "video", "episode", "Video kind: episode or movie")
	cmd.Flags().BoolVar(&noProfiles, "no-profiles", false, "Ignore stored custom profiles")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON")
	return cmd
}
