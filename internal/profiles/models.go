package profiles

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/language"

	"subscore/internal/score"
)

// ConditionType selects which subtitle attribute a condition inspects.
type ConditionType string

const (
	ConditionProvider ConditionType = "provider"
	ConditionUploader ConditionType = "uploader"
	ConditionLanguage ConditionType = "language"
	ConditionRegex    ConditionType = "regex"
)

// ParseConditionType normalizes a user-supplied condition type.
func ParseConditionType(value string) (ConditionType, error) {
	switch ConditionType(strings.ToLower(strings.TrimSpace(value))) {
	case ConditionProvider:
		return ConditionProvider, nil
	case ConditionUploader:
		return ConditionUploader, nil
	case ConditionLanguage:
		return ConditionLanguage, nil
	case ConditionRegex, "release", "release_info":
		return ConditionRegex, nil
	default:
		return "", fmt.Errorf("%w: unknown condition type %q", ErrValidation, value)
	}
}

// Condition is a single test against a subtitle.
type Condition struct {
	Type     ConditionType
	Value    string
	Required bool
	Negate   bool
}

// Profile awards Score to subtitles that satisfy its conditions.
type Profile struct {
	ID string
	// Name doubles as the match kind suffix, so it must be unique.
	Name string
	// Score is the weight of the profile's match kind.
	Score int
	// MediaType limits the profile to "episode" or "movie"; empty applies to both.
	MediaType  string
	Conditions []Condition
	CreatedAt  time.Time
}

// MatchKind returns the kind added to a match set when the profile applies.
func (p Profile) MatchKind() score.MatchKind {
	return MatchKindFor(p.Name)
}

// MatchKindFor returns the match kind for a profile name.
func MatchKindFor(name string) score.MatchKind {
	return score.MatchKind("profile:" + name)
}

// AppliesTo reports whether the profile is scoped to the given video.
func (p Profile) AppliesTo(video score.Video) bool {
	return p.MediaType == "" || p.MediaType == score.VideoKind(video)
}

func (p *Profile) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.MediaType = strings.ToLower(strings.TrimSpace(p.MediaType))
	for i := range p.Conditions {
		p.Conditions[i].Value = strings.TrimSpace(p.Conditions[i].Value)
	}
}

// Validate checks the profile is storable and its conditions compile.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.ContainsAny(p.Name, " \t\n") {
		return fmt.Errorf("%w: name %q must not contain whitespace", ErrValidation, p.Name)
	}
	if p.Score < 0 {
		return fmt.Errorf("%w: score must be >= 0", ErrValidation)
	}
	switch p.MediaType {
	case "", "episode", "movie":
	default:
		return fmt.Errorf("%w: media type must be episode, movie, or empty, got %q", ErrValidation, p.MediaType)
	}
	if len(p.Conditions) == 0 {
		return fmt.Errorf("%w: at least one condition is required", ErrValidation)
	}
	for i, cond := range p.Conditions {
		if _, err := compileCondition(cond); err != nil {
			return fmt.Errorf("condition %d: %w", i+1, err)
		}
	}
	return nil
}

type matcher func(sub score.Subtitle) bool

func compileCondition(cond Condition) (matcher, error) {
	if cond.Value == "" {
		return nil, fmt.Errorf("%w: %s condition needs a value", ErrValidation, cond.Type)
	}
	var check matcher
	switch cond.Type {
	case ConditionProvider:
		check = func(sub score.Subtitle) bool { return strings.EqualFold(strings.TrimSpace(sub.Provider), cond.Value) }
	case ConditionUploader:
		check = func(sub score.Subtitle) bool { return strings.EqualFold(strings.TrimSpace(sub.Uploader), cond.Value) }
	case ConditionLanguage:
		check = func(sub score.Subtitle) bool { return sameLanguage(sub.Language, cond.Value) }
	case ConditionRegex:
		re, err := regexp.Compile("(?i)" + cond.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: regex %q: %v", ErrValidation, cond.Value, err)
		}
		check = func(sub score.Subtitle) bool { return re.MatchString(sub.ReleaseInfo) }
	default:
		return nil, fmt.Errorf("%w: unknown condition type %q", ErrValidation, cond.Type)
	}
	if cond.Negate {
		return func(sub score.Subtitle) bool { return !check(sub) }, nil
	}
	return check, nil
}

// sameLanguage compares by base language so "en", "eng", and "en-US" agree.
// Values that are not valid tags fall back to case-insensitive equality.
func sameLanguage(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	ta, errA := language.Parse(a)
	tb, errB := language.Parse(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	ba, _ := ta.Base()
	bb, _ := tb.Base()
	return ba == bb
}
