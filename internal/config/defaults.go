package config

const (
	defaultConfigPath = "~/.config/subscore/config.toml"
	defaultDataDir    = "~/.local/share/subscore"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults. Weight
// overrides start empty; the built-in tables live with the scoring code.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
		},
		Framerate: Framerate{
			EquivalentGroups: [][]float64{{23.976, 23.98, 24.0}},
		},
		Profiles: Profiles{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
