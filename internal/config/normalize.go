package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	var err error
	if c.Scores.Episode, err = normalizeScores("scores.episode", c.Scores.Episode); err != nil {
		return err
	}
	if c.Scores.Movie, err = normalizeScores("scores.movie", c.Scores.Movie); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("SUBSCORE_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DataDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	var err error
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	return nil
}

// normalizeScores lowercases match kind keys and folds dashes into
// underscores so "Release-Group" and "release_group" address the same weight.
func normalizeScores(section string, scores map[string]int) (map[string]int, error) {
	if len(scores) == 0 {
		return scores, nil
	}
	out := make(map[string]int, len(scores))
	for key, weight := range scores {
		normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
		if normalized == "" {
			return nil, fmt.Errorf("%s: empty match kind", section)
		}
		if _, dup := out[normalized]; dup {
			return nil, fmt.Errorf("%s: duplicate match kind %q", section, normalized)
		}
		out[normalized] = weight
	}
	return out, nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
