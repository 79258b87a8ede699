package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging and frame stats")
	flagWidth   = flag.Int("width", 0, "Screen width")
	flagHeight  = flag.Int("height", 0, "Screen height")
	flagStride  = flag.Int("stride", 0, "Columns per cast ray")
	flagWorkers = flag.Int("workers", -1, "Parallel ray casters, 0 or 1 disables")
	flagLevel   = flag.String("level", "", "Level file to load")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.ShowFPS = true
		cfg.Debug.PerfLog = true
	}
	if *flagWidth > 0 {
		cfg.Display.ScreenWidth = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Display.ScreenHeight = *flagHeight
	}
	if *flagStride > 0 {
		cfg.Raycast.Stride = *flagStride
	}
	if *flagWorkers >= 0 {
		cfg.Raycast.Workers = *flagWorkers
	}
	if *flagLevel != "" {
		cfg.Level.File = *flagLevel
	}
}
