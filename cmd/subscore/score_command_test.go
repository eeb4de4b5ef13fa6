package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"subscore/internal/testsupport"
)

func TestScoreCommandEpisodeHash(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"score", "--json", "--hash-verifiable",
		"--match", "hash,series,season,episode,source",
	}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	view := decodeJSON[scoreView](t, out)
	if view.Score != 809 {
		t.Fatalf("score = %d, want 809", view.Score)
	}
	if view.ScoreWithoutHash != 502 {
		t.Fatalf("score_without_hash = %d, want 502", view.ScoreWithoutHash)
	}
	if !slices.Equal(view.FinalMatches, []string{"hash"}) {
		t.Fatalf("final matches = %v", view.FinalMatches)
	}
	if view.Video != "episode" {
		t.Fatalf("video = %q", view.Video)
	}
}

func TestScoreCommandMovieImdbExpansion(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"score", "--json", "--video", "movie", "-m", "imdb_id"}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	view := decodeJSON[scoreView](t, out)
	if view.Score != 180 || view.ScoreWithoutHash != 180 {
		t.Fatalf("got (%d, %d), want (180, 180)", view.Score, view.ScoreWithoutHash)
	}
	if !slices.Equal(view.FinalMatches, []string{"imdb_id", "title", "year"}) {
		t.Fatalf("final matches = %v", view.FinalMatches)
	}
}

func TestScoreCommandHearingImpaired(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{
		"score", "--json", "--video", "movie", "--match", "title",
		"--subtitle-hi", "--hearing-impaired", "yes",
	}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	view := decodeJSON[scoreView](t, out)
	if view.Score != 136 {
		t.Fatalf("score = %d, want 136", view.Score)
	}
	if view.Weights["hearing_impaired"] != 1 {
		t.Fatalf("weights = %v", view.Weights)
	}
}

func TestScoreCommandConfigOverrides(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMovieScores(map[string]int{"title": 100}))

	out, _, err := runCLI(t, []string{"score", "--json", "--video", "movie", "--match", "title,year"}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	view := decodeJSON[scoreView](t, out)
	if view.Score != 145 {
		t.Fatalf("score = %d, want 145", view.Score)
	}
}

func TestScoreCommandAppliesProfiles(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{
		"profiles", "add", "bluray", "--score", "25", "--when", "regex=blu-?ray",
	}, env.configPath); err != nil {
		t.Fatalf("profiles add: %v", err)
	}

	args := []string{"score", "--json", "--video", "movie", "--match", "title", "--release", "Movie.2020.1080p.BluRay.x264"}
	out, _, err := runCLI(t, args, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	view := decodeJSON[scoreView](t, out)
	if view.Score != 160 || view.ScoreWithoutHash != 160 {
		t.Fatalf("got (%d, %d), want (160, 160)", view.Score, view.ScoreWithoutHash)
	}
	if view.Weights["profile:bluray"] != 25 {
		t.Fatalf("weights = %v", view.Weights)
	}

	out, _, err = runCLI(t, append(args, "--no-profiles"), env.configPath)
	if err != nil {
		t.Fatalf("score --no-profiles: %v", err)
	}
	if view := decodeJSON[scoreView](t, out); view.Score != 135 {
		t.Fatalf("score without profiles = %d, want 135", view.Score)
	}
}

func TestScoreCommandTableOutput(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithProfilesDisabled())

	out, _, err := runCLI(t, []string{"score", "--match", "series,release_group"}, env.configPath)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	requireContains(t, out, "Release Group")
	requireContains(t, out, "Score: 420")
	requireContains(t, out, "Score without hash: 420")
}

func TestScoreCommandRejectsBadInput(t *testing.T) {
	env := setupCLITestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown video", []string{"score", "--video", "podcast"}},
		{"special movie", []string{"score", "--video", "movie", "--special"}},
		{"bad preference", []string{"score", "--hearing-impaired", "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, tt.args, env.configPath); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestFramerateCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"framerate", "24", "23.976"}, env.configPath)
	if err != nil {
		t.Fatalf("framerate: %v", err)
	}
	requireContains(t, out, "equivalent: yes")

	out, _, err = runCLI(t, []string{"framerate", "25", "24"}, env.configPath)
	if err != nil {
		t.Fatalf("framerate: %v", err)
	}
	requireContains(t, out, "equivalent: no")

	if _, _, err := runCLI(t, []string{"framerate", "fast", "24"}, env.configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestWeightsCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithEpisodeScores(map[string]int{"hash": 900}))

	out, _, err := runCLI(t, []string{"weights", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("weights: %v", err)
	}
	weights := decodeJSON[map[string]int](t, out)
	if weights["hash"] != 900 || weights["series"] != 405 {
		t.Fatalf("weights = %v", weights)
	}
	if w, ok := weights["imdb_id"]; !ok || w != 0 {
		t.Fatalf("expected imdb_id listed at weight 0, got %v (present=%v)", w, ok)
	}

	out, _, err = runCLI(t, []string{"weights", "--video", "movie"}, env.configPath)
	if err != nil {
		t.Fatalf("weights movie: %v", err)
	}
	requireContains(t, out, "Streaming Service")
	requireContains(t, out, "Series Tvdb Id")
}

func TestCommandContextClosesLogFile(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Logging.File = true
	env.cfg.Logging.Level = "info"
	env.cfg.Logging.Format = "json"
	writeTestConfig(t, env.configPath, env.cfg)

	cmd, cmdCtx := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", env.configPath, "score", "--match", "series"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("score: %v", err)
	}
	if err := cmdCtx.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := cmdCtx.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(env.cfg.Paths.DataDir, "subscore.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	requireContains(t, string(content), "computed subtitle score")
}
