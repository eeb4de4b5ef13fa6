package score

import "log/slog"

type equivalenceRule struct {
	name    string
	trigger MatchKind
	adds    []MatchKind
}

// Rules read the post-hash match set, never the growing equivalence set, so
// their order does not change the outcome.
var episodeEquivalences = []equivalenceRule{
	{name: "title", trigger: MatchTitle, adds: []MatchKind{MatchEpisode}},
	{name: "series_imdb_id", trigger: MatchSeriesIMDBID, adds: []MatchKind{MatchSeries, MatchYear}},
	{name: "imdb_id", trigger: MatchIMDBID, adds: []MatchKind{MatchSeries, MatchYear, MatchSeason, MatchEpisode}},
	{name: "tvdb_id", trigger: MatchTVDBID, adds: []MatchKind{MatchSeries, MatchYear, MatchSeason, MatchEpisode, MatchTitle}},
	{name: "series_tvdb_id", trigger: MatchSeriesTVDBID, adds: []MatchKind{MatchSeries, MatchYear}},
}

var specialEquivalenceTrigger = NewMatchSet(MatchTitle, MatchSeries, MatchYear)

// equivalentMatches returns the matches implied by strong identifiers in
// matches. The result is a fresh set; matches is not modified.
func equivalentMatches(logger *slog.Logger, matches MatchSet, video Video) MatchSet {
	eq := make(MatchSet)
	switch v := video.(type) {
	case Episode:
		for _, rule := range episodeEquivalences {
			if matches.Has(rule.trigger) {
				logger.Debug("adding match equivalents", slog.String("rule", rule.name))
				eq.Add(rule.adds...)
			}
		}
		if v.Special && specialEquivalenceTrigger.SubsetOf(matches) {
			logger.Debug("adding special title match equivalents")
			eq.Add(MatchSeason, MatchEpisode)
		}
	case Movie:
		if matches.Has(MatchIMDBID) {
			logger.Debug("adding match equivalents", slog.String("rule", "imdb_id"))
			eq.Add(MatchTitle, MatchYear)
		}
	}
	return eq
}
