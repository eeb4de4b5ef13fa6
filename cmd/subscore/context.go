package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"subscore/internal/config"
	"subscore/internal/logging"
	"subscore/internal/profiles"
	"subscore/internal/score"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce  sync.Once
	logger      *slog.Logger
	loggerErr   error
	closeLogger func() error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// commandLogger returns the configured logger tagged with a fresh correlation
// id, plus a context carrying the same id.
func (c *commandContext) commandLogger(cmd *cobra.Command) (context.Context, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	c.loggerOnce.Do(func() {
		c.logger, c.closeLogger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	if c.loggerErr != nil {
		return nil, nil, fmt.Errorf("init logger: %w", c.loggerErr)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.ContextWithCorrelationID(ctx, uuid.NewString())
	return ctx, logging.WithContext(ctx, c.logger), nil
}

// Close releases the log file opened for this invocation, if any.
func (c *commandContext) Close() error {
	if c.closeLogger == nil {
		return nil
	}
	closeFn := c.closeLogger
	c.closeLogger = nil
	return closeFn()
}

func (c *commandContext) withStore(ctx context.Context, fn func(*profiles.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}
	store, err := profiles.Open(ctx, cfg.ProfilesDBPath())
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// baseWeights merges configured overrides over the built-in table for video.
func baseWeights(cfg *config.Config, video score.Video) score.WeightTable {
	overrides := make(score.WeightTable)
	for kind, weight := range cfg.ScoreOverrides(score.VideoKind(video)) {
		overrides[score.ParseMatchKind(kind)] = weight
	}
	return score.DefaultWeights(video).Merge(overrides)
}

func parseVideo(kind string, special bool) (score.Video, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "episode", "tv", "series":
		return score.Episode{Special: special}, nil
	case "movie", "film":
		if special {
			return nil, errors.New("--special only applies to episodes")
		}
		return score.Movie{}, nil
	default:
		return nil, fmt.Errorf("unknown video kind %q (want episode or movie)", kind)
	}
}

func parseMatches(values []string) score.MatchSet {
	set := score.NewMatchSet()
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if kind := score.ParseMatchKind(part); kind != "" {
				set.Add(kind)
			}
		}
	}
	return set
}

func parseTriState(value string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "any":
		return nil, nil
	case "yes", "true", "1":
		v := true
		return &v, nil
	case "no", "false", "0":
		v := false
		return &v, nil
	default:
		return nil, fmt.Errorf("invalid preference %q (want yes, no, or any)", value)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
