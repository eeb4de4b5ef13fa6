package score

import (
	"sort"
	"strings"
)

// MatchKind names one dimension on which a subtitle agrees with a video.
type MatchKind string

const (
	MatchHash             MatchKind = "hash"
	MatchTitle            MatchKind = "title"
	MatchSeries           MatchKind = "series"
	MatchSeason           MatchKind = "season"
	MatchEpisode          MatchKind = "episode"
	MatchYear             MatchKind = "year"
	MatchCountry          MatchKind = "country"
	MatchReleaseGroup     MatchKind = "release_group"
	MatchStreamingService MatchKind = "streaming_service"
	MatchSource           MatchKind = "source"
	MatchAudioCodec       MatchKind = "audio_codec"
	MatchResolution       MatchKind = "resolution"
	MatchVideoCodec       MatchKind = "video_codec"
	MatchIMDBID           MatchKind = "imdb_id"
	MatchSeriesIMDBID     MatchKind = "series_imdb_id"
	MatchTVDBID           MatchKind = "tvdb_id"
	MatchSeriesTVDBID     MatchKind = "series_tvdb_id"
	MatchHearingImpaired  MatchKind = "hearing_impaired"
)

// KnownKinds lists the match kinds the calculator reasons about.
var KnownKinds = []MatchKind{
	MatchHash, MatchTitle, MatchSeries, MatchSeason, MatchEpisode, MatchYear,
	MatchCountry, MatchReleaseGroup, MatchStreamingService, MatchSource,
	MatchAudioCodec, MatchResolution, MatchVideoCodec, MatchIMDBID,
	MatchSeriesIMDBID, MatchTVDBID, MatchSeriesTVDBID, MatchHearingImpaired,
}

// ParseMatchKind normalizes user input into a MatchKind. Unknown kinds are
// allowed; they simply carry no weight unless a table assigns one.
func ParseMatchKind(value string) MatchKind {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, "-", "_")
	return MatchKind(v)
}

// MatchSet is an unordered set of match kinds. Set operations return new sets;
// only Add and Remove modify the receiver.
type MatchSet map[MatchKind]struct{}

// NewMatchSet builds a set from the provided kinds, skipping empty values.
func NewMatchSet(kinds ...MatchKind) MatchSet {
	set := make(MatchSet, len(kinds))
	for _, kind := range kinds {
		if kind == "" {
			continue
		}
		set[kind] = struct{}{}
	}
	return set
}

func (s MatchSet) Has(kind MatchKind) bool {
	_, ok := s[kind]
	return ok
}

func (s MatchSet) Add(kinds ...MatchKind) {
	for _, kind := range kinds {
		s[kind] = struct{}{}
	}
}

func (s MatchSet) Remove(kinds ...MatchKind) {
	for _, kind := range kinds {
		delete(s, kind)
	}
}

func (s MatchSet) Len() int { return len(s) }

// Clone returns an independent copy. Cloning a nil set yields an empty set.
func (s MatchSet) Clone() MatchSet {
	out := make(MatchSet, len(s))
	for kind := range s {
		out[kind] = struct{}{}
	}
	return out
}

func (s MatchSet) Union(other MatchSet) MatchSet {
	out := s.Clone()
	for kind := range other {
		out[kind] = struct{}{}
	}
	return out
}

func (s MatchSet) Intersect(other MatchSet) MatchSet {
	out := make(MatchSet)
	for kind := range s {
		if other.Has(kind) {
			out[kind] = struct{}{}
		}
	}
	return out
}

func (s MatchSet) Difference(other MatchSet) MatchSet {
	out := make(MatchSet, len(s))
	for kind := range s {
		if !other.Has(kind) {
			out[kind] = struct{}{}
		}
	}
	return out
}

// SubsetOf reports whether every kind in s is also in other.
func (s MatchSet) SubsetOf(other MatchSet) bool {
	for kind := range s {
		if !other.Has(kind) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold exactly the same kinds.
func (s MatchSet) Equal(other MatchSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the kinds in lexical order for stable output.
func (s MatchSet) Sorted() []MatchKind {
	out := make([]MatchKind, 0, len(s))
	for kind := range s {
		out = append(out, kind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted kinds as plain strings, handy for logging.
func (s MatchSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, kind := range sorted {
		out[i] = string(kind)
	}
	return out
}
