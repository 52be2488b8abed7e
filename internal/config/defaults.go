package config

const (
	defaultDestination = "AE"
	// AE and Shake struggle with thousands of static trackers.
	defaultMaxStatic    = 500
	defaultOutputDir    = "output"
	defaultSceneDir     = "input/scenes"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultStatsLogPath = "benchmark.log"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Export: Export{
			Destination: defaultDestination,
			MaxStatic:   defaultMaxStatic,
			OutputDir:   defaultOutputDir,
			SceneDir:    defaultSceneDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Stats: Stats{
			LogPath: defaultStatsLogPath,
		},
		BuildVersion: "dev",
	}
}
