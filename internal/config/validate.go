package config

import (
	"errors"
	"fmt"
	"sort"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScores(); err != nil {
		return err
	}
	if err := c.validateFramerate(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScores() error {
	for section, scores := range map[string]map[string]int{
		"scores.episode": c.Scores.Episode,
		"scores.movie":   c.Scores.Movie,
	} {
		keys := make([]string, 0, len(scores))
		for key := range scores {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if scores[key] < 0 {
				return fmt.Errorf("%s.%s must be >= 0", section, key)
			}
		}
	}
	return nil
}

func (c *Config) validateFramerate() error {
	for i, group := range c.Framerate.EquivalentGroups {
		if len(group) < 2 {
			return fmt.Errorf("framerate.equivalent_groups[%d] must list at least two rates", i)
		}
		for _, rate := range group {
			if rate <= 0 {
				return fmt.Errorf("framerate.equivalent_groups[%d] contains non-positive rate %v", i, rate)
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
