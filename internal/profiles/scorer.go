package profiles

import (
	"context"
	"log/slog"

	"subscore/internal/logging"
	"subscore/internal/score"
)

// Scorer is a score.WeightSource that layers custom profiles over a base
// weight table. It is immutable after construction and safe for concurrent use.
type Scorer struct {
	weights  score.WeightTable
	profiles []compiledProfile
	logger   *slog.Logger
}

// NewScorer builds a scorer from base and the profiles scoped to video. Each
// profile's match kind is weighted with the profile's score. Invalid profiles
// are skipped with a warning.
func NewScorer(base score.WeightTable, video score.Video, profiles []Profile, logger *slog.Logger) *Scorer {
	logger = logging.NewComponentLogger(logger, "profiles")
	s := &Scorer{
		weights: base.Clone(),
		logger:  logger,
	}
	for _, p := range profiles {
		if !p.AppliesTo(video) {
			continue
		}
		compiled, err := compileProfile(p)
		if err != nil {
			logger.Warn("skipping invalid score profile",
				logging.String(logging.FieldProfile, p.Name),
				logging.Error(err),
				logging.Alert("profile_invalid"),
			)
			continue
		}
		s.weights[p.MatchKind()] = p.Score
		s.profiles = append(s.profiles, compiled)
	}
	return s
}

// LoadScorer reads every stored profile and builds a scorer for video.
func LoadScorer(ctx context.Context, store *Store, base score.WeightTable, video score.Video, logger *slog.Logger) (*Scorer, error) {
	profiles, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewScorer(base, video, profiles, logger), nil
}

// Weight implements score.WeightSource.
func (s *Scorer) Weight(kind score.MatchKind) int {
	return s.weights.Weight(kind)
}

// Weights returns a copy of the effective table including profile kinds.
func (s *Scorer) Weights() score.WeightTable {
	return s.weights.Clone()
}

// ApplyCustomProfiles implements score.ProfileHook by adding the match kind of
// every profile sub satisfies.
func (s *Scorer) ApplyCustomProfiles(sub score.Subtitle, matches score.MatchSet) {
	for _, p := range s.profiles {
		if !p.matches(sub) {
			continue
		}
		s.logger.Debug("custom score profile matched",
			logging.String(logging.FieldProfile, p.profile.Name),
			logging.String("subtitle", sub.String()),
			logging.Int("score", p.profile.Score),
		)
		matches.Add(p.profile.MatchKind())
	}
}
