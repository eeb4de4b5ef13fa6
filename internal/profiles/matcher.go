package profiles

import "subscore/internal/score"

// compiledProfile is a profile with its conditions turned into matchers.
type compiledProfile struct {
	profile  Profile
	required []matcher
	optional []matcher
}

func compileProfile(p Profile) (compiledProfile, error) {
	if err := p.Validate(); err != nil {
		return compiledProfile{}, err
	}
	out := compiledProfile{profile: p}
	for _, cond := range p.Conditions {
		check, err := compileCondition(cond)
		if err != nil {
			return compiledProfile{}, err
		}
		if cond.Required {
			out.required = append(out.required, check)
		} else {
			out.optional = append(out.optional, check)
		}
	}
	return out, nil
}

// matches holds when every required condition passes and, if optional
// conditions exist, at least one of them passes too.
func (c compiledProfile) matches(sub score.Subtitle) bool {
	if len(c.required) == 0 && len(c.optional) == 0 {
		return false
	}
	for _, check := range c.required {
		if !check(sub) {
			return false
		}
	}
	if len(c.optional) == 0 {
		return true
	}
	for _, check := range c.optional {
		if check(sub) {
			return true
		}
	}
	return false
}

// Matches reports whether sub satisfies the profile. Invalid profiles never match.
func (p Profile) Matches(sub score.Subtitle) bool {
	compiled, err := compileProfile(p)
	if err != nil {
		return false
	}
	return compiled.matches(sub)
}
