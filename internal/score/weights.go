package score

// WeightSource assigns a score contribution to each match kind. Lookups are
// total: unknown kinds weigh 0.
type WeightSource interface {
	Weight(kind MatchKind) int
}

// ProfileHook is an optional WeightSource capability. When present, Compute
// calls it on its working match set before anything else so custom profiles can
// contribute their own match kinds.
type ProfileHook interface {
	ApplyCustomProfiles(sub Subtitle, matches MatchSet)
}

// WeightTable is a plain weight mapping with no profile hook.
type WeightTable map[MatchKind]int

// Weight returns the weight for kind, or 0 when absent.
func (t WeightTable) Weight(kind MatchKind) int {
	return t[kind]
}

// Clone returns an independent copy.
func (t WeightTable) Clone() WeightTable {
	out := make(WeightTable, len(t))
	for kind, weight := range t {
		out[kind] = weight
	}
	return out
}

// Merge returns a copy of t with overrides applied on top.
func (t WeightTable) Merge(overrides WeightTable) WeightTable {
	out := t.Clone()
	for kind, weight := range overrides {
		out[kind] = weight
	}
	return out
}

// EpisodeWeights returns the default weights for TV episodes.
func EpisodeWeights() WeightTable {
	return WeightTable{
		MatchHash:             809,
		MatchSeries:           405,
		MatchYear:             135,
		MatchCountry:          135,
		MatchSeason:           45,
		MatchEpisode:          45,
		MatchReleaseGroup:     15,
		MatchStreamingService: 15,
		MatchSource:           7,
		MatchAudioCodec:       3,
		MatchResolution:       2,
		MatchVideoCodec:       2,
		MatchHearingImpaired:  1,
	}
}

// MovieWeights returns the default weights for movies.
func MovieWeights() WeightTable {
	return WeightTable{
		MatchHash:             269,
		MatchTitle:            135,
		MatchYear:             45,
		MatchCountry:          45,
		MatchReleaseGroup:     15,
		MatchStreamingService: 15,
		MatchSource:           7,
		MatchAudioCodec:       3,
		MatchResolution:       2,
		MatchVideoCodec:       2,
		MatchHearingImpaired:  1,
	}
}

// DefaultWeights picks the default table for the video variant. Movies and
// unknown videos share the movie table.
func DefaultWeights(v Video) WeightTable {
	if _, ok := v.(Episode); ok {
		return EpisodeWeights()
	}
	return MovieWeights()
}
