package score

// Video is the target a subtitle is scored against. The set of variants is
// closed: Episode and Movie. A nil Video scores with no variant-specific rules.
type Video interface {
	videoKind() string
}

// Episode is a TV episode. Specials are unnumbered bonus episodes whose season
// and episode metadata is frequently wrong.
type Episode struct {
	Special bool
}

func (Episode) videoKind() string { return "episode" }

// Movie is a feature film.
type Movie struct{}

func (Movie) videoKind() string { return "movie" }

// VideoKind returns "episode", "movie", or "" for a nil video.
func VideoKind(v Video) string {
	if v == nil {
		return ""
	}
	return v.videoKind()
}

// Subtitle carries the candidate attributes the calculator and custom profiles
// read. Provider, Language, ReleaseInfo, and Uploader are only consulted by
// profile conditions.
type Subtitle struct {
	ID              string
	Provider        string
	Language        string
	ReleaseInfo     string
	Uploader        string
	HashVerifiable  bool
	HearingImpaired bool
}

// String identifies the subtitle in log lines.
func (s Subtitle) String() string {
	switch {
	case s.Provider != "" && s.ID != "":
		return s.Provider + ":" + s.ID
	case s.ID != "":
		return s.ID
	case s.Provider != "":
		return s.Provider
	default:
		return "subtitle"
	}
}
