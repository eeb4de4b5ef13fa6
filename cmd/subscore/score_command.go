package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subscore/internal/profiles"
	"subscore/internal/score"
)

type scoreOptions struct {
	video           string
	special         bool
	matches         []string
	hashVerifiable  bool
	subtitleHI      bool
	hearingImpaired string
	subtitleID      string
	provider        string
	uploader        string
	language        string
	release         string
	noProfiles      bool
	jsonOutput      bool
}

type scoreView struct {
	Video            string         `json:"video"`
	Subtitle         string         `json:"subtitle"`
	Score            int            `json:"score"`
	ScoreWithoutHash int            `json:"score_without_hash"`
	InputMatches     []string       `json:"input_matches"`
	FinalMatches     []string       `json:"final_matches"`
	Weights          map[string]int `json:"weights"`
}

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var opts scoreOptions

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one subtitle against a video",
		Long: "Score one subtitle against a video from the match kinds an external matcher found.\n\n" +
			"Hash matches are validated against the surrounding metadata, strong identifiers such as\n" +
			"imdb_id expand into the matches they imply, and stored custom profiles add their weight.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(ctx, cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.video, "video", "episode", "Video kind: episode or movie")
	flags.BoolVar(&opts.special, "special", false, "Episode is a special")
	flags.StringSliceVarP(&opts.matches, "match", "m", nil, "Match kinds (repeatable or comma separated)")
	flags.BoolVar(&opts.hashVerifiable, "hash-verifiable", false, "Provider hashes can be validated")
	flags.BoolVar(&opts.subtitleHI, "subtitle-hi", false, "Subtitle is for the hearing impaired")
	flags.StringVar(&opts.hearingImpaired, "hearing-impaired", "any", "Hearing impaired preference: yes, no, or any")
	flags.StringVar(&opts.subtitleID, "id", "", "Subtitle identifier used in logs")
	flags.StringVar(&opts.provider, "provider", "", "Subtitle provider (for custom profiles)")
	flags.StringVar(&opts.uploader, "uploader", "", "Subtitle uploader (for custom profiles)")
	flags.StringVar(&opts.language, "language", "", "Subtitle language (for custom profiles)")
	flags.StringVar(&opts.release, "release", "", "Subtitle release name (for custom profiles)")
	flags.BoolVar(&opts.noProfiles, "no-profiles", false, "Ignore stored custom profiles")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Emit JSON instead of a table")

	return cmd
}

func runScore(ctx *commandContext, cmd *cobra.Command, opts scoreOptions) error {
	video, err := parseVideo(opts.video, opts.special)
	if err != nil {
		return err
	}
	preference, err := parseTriState(opts.hearingImpaired)
	if err != nil {
		return err
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	runCtx, logger, err := ctx.commandLogger(cmd)
	if err != nil {
		return err
	}

	matches := parseMatches(opts.matches)
	sub := score.Subtitle{
		ID:              strings.TrimSpace(opts.subtitleID),
		Provider:        strings.TrimSpace(opts.provider),
		Language:        strings.TrimSpace(opts.language),
		ReleaseInfo:     strings.TrimSpace(opts.release),
		Uploader:        strings.TrimSpace(opts.uploader),
		HashVerifiable:  opts.hashVerifiable,
		HearingImpaired: opts.subtitleHI,
	}

	base := baseWeights(cfg, video)
	var (
		weights score.WeightSource = base
		table                      = base
	)
	if cfg.Profiles.Enabled && !opts.noProfiles {
		err := ctx.withStore(runCtx, func(store *profiles.Store) error {
			scorer, err := profiles.LoadScorer(runCtx, store, base, video, logger)
			if err != nil {
				return err
			}
			weights = scorer
			table = scorer.Weights()
			return nil
		})
		if err != nil {
			return err
		}
	}

	result := score.NewCalculator(logger).Compute(matches, sub, video, preference, weights)

	view := scoreView{
		Video:            score.VideoKind(video),
		Subtitle:         sub.String(),
		Score:            result.Score,
		ScoreWithoutHash: result.ScoreWithoutHash,
		InputMatches:     matches.Strings(),
		FinalMatches:     result.Matches.Strings(),
		Weights:          make(map[string]int, result.Matches.Len()),
	}
	for _, kind := range result.Matches.Sorted() {
		view.Weights[string(kind)] = table.Weight(kind)
	}

	if opts.jsonOutput {
		return writeJSON(cmd, view)
	}
	return renderScore(cmd, view)
}

func renderScore(cmd *cobra.Command, view scoreView) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(view.FinalMatches))
	for _, kind := range view.FinalMatches {
		rows = append(rows, []string{displayKind(kind), strconv.Itoa(view.Weights[kind])})
	}
	fmt.Fprintln(out, renderTable([]string{"Match", "Weight"}, rows, []columnAlignment{alignLeft, alignRight}))
	fmt.Fprintf(out, "Score: %s\n", highlight(strconv.Itoa(view.Score), colorize))
	fmt.Fprintf(out, "Score without hash: %d\n", view.ScoreWithoutHash)
	return nil
}
