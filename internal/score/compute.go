package score

import (
	"log/slog"

	"subscore/internal/logging"
)

var (
	episodeHashValidIf = NewMatchSet(MatchSeries, MatchSeason, MatchEpisode, MatchSource)
	movieHashValidIf   = NewMatchSet(MatchVideoCodec, MatchSource)
)

// Result is the outcome of scoring one subtitle.
type Result struct {
	Score            int
	ScoreWithoutHash int
	// Matches is the final working set the score was summed over.
	Matches MatchSet
}

// Calculator scores subtitles. The zero value is usable and logs nothing.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator returns a calculator that reports its decisions to logger.
func NewCalculator(logger *slog.Logger) *Calculator {
	return &Calculator{logger: logging.NewComponentLogger(logger, "score")}
}

// Compute scores with a silent calculator.
func Compute(matches MatchSet, sub Subtitle, video Video, hearingImpaired *bool, weights WeightSource) Result {
	var c Calculator
	return c.Compute(matches, sub, video, hearingImpaired, weights)
}

// Compute returns the score of sub against video given the matches an external
// matcher established. hearingImpaired is the caller preference; nil means no
// preference. A nil weights source uses DefaultWeights(video). The caller's
// matches are never modified.
func (c *Calculator) Compute(matches MatchSet, sub Subtitle, video Video, hearingImpaired *bool, weights WeightSource) Result {
	logger := c.logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(
		logging.String("subtitle", sub.String()),
		logging.String("video", VideoKind(video)),
	)
	logger.Info("computing subtitle score",
		logging.Any("matches", matches.Strings()),
		logging.Any("hearing_impaired", preferenceValue(hearingImpaired)),
	)

	if weights == nil {
		weights = DefaultWeights(video)
	}

	working := matches.Clone()
	if hook, ok := weights.(ProfileHook); ok {
		hook.ApplyCustomProfiles(sub, working)
	}
	orig := working.Clone()

	working = c.adjustHash(logger, working, sub, video)

	eq := equivalentMatches(logger, working, video)
	working = working.Union(eq)

	if hearingImpaired != nil && sub.HearingImpaired == *hearingImpaired {
		logger.Debug("matched hearing_impaired")
		working.Add(MatchHearingImpaired)
		orig.Add(MatchHearingImpaired)
	}

	total := sumWeights(weights, working, false)
	withoutHash := sumWeights(weights, orig.Union(eq), true)

	logger.Info("computed subtitle score",
		logging.Int("score", total),
		logging.Int("score_without_hash", withoutHash),
		logging.Any("final_matches", working.Strings()),
	)
	return Result{Score: total, ScoreWithoutHash: withoutHash, Matches: working}
}

// adjustHash either trusts a hash match exclusively or discards it, depending on
// whether the surrounding metadata agrees. matches is the working copy and may
// be modified in place.
func (c *Calculator) adjustHash(logger *slog.Logger, matches MatchSet, sub Subtitle, video Video) MatchSet {
	if !matches.Has(MatchHash) {
		return matches
	}
	hashOnly := NewMatchSet(MatchHash)
	if !sub.HashVerifiable {
		// Collapses to {hash}: kept as the established behavior even though it
		// discards every other match for unverifiable providers.
		logger.Debug("hash not verifiable for this provider; keeping it")
		return matches.Intersect(hashOnly)
	}

	validIf := movieHashValidIf
	episode, isEpisode := video.(Episode)
	if isEpisode {
		validIf = episodeHashValidIf
	}
	// Season and episode of specials are unreliable; leave the hash alone.
	if isEpisode && episode.Special {
		return matches
	}

	if validIf.SubsetOf(matches) {
		logger.Debug("using valid hash",
			logging.Any("required", validIf.Strings()),
			logging.Any("matches", matches.Strings()),
		)
		return hashOnly
	}
	logger.Debug("ignoring hash as other matches are wrong",
		logging.Any("missing", validIf.Difference(matches).Strings()),
	)
	matches.Remove(MatchHash)
	return matches
}

func sumWeights(weights WeightSource, matches MatchSet, skipHash bool) int {
	total := 0
	for kind := range matches {
		if skipHash && kind == MatchHash {
			continue
		}
		if w := weights.Weight(kind); w > 0 {
			total += w
		}
	}
	return total
}

func preferenceValue(pref *bool) any {
	if pref == nil {
		return "any"
	}
	return *pref
}
