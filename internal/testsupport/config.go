package testsupport

import (
	"path/filepath"
	"testing"

	"subscore/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with a unique temp data directory per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("invalid test config: %v", err)
	}
	return builder.cfg
}

// WithEpisodeScores sets episode weight overrides on the test config.
func WithEpisodeScores(scores map[string]int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scores.Episode = scores
	}
}

// WithMovieScores sets movie weight overrides on the test config.
func WithMovieScores(scores map[string]int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scores.Movie = scores
	}
}

// WithProfilesDisabled turns custom profile lookup off.
func WithProfilesDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Profiles.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
