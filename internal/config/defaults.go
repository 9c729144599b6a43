package config

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		IgnorePatterns: []string{
			"node_modules",
			".git",
			".venv",
			"venv",
			"env",
			"__pycache__",
		},
		MinSizeMB:         100,
		ScreenshotAgeDays: 30,
		ChartWidth:        40,
		Verbose:           false,
	}
}
