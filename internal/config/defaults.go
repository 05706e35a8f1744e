package config

// Default configuration constants
const (
	defaultCompleter   = "omni"
	defaultMaxResults  = 10
	defaultHistoryScan = 500

	defaultMaxLogSizeMB  = 10
	defaultMaxBackups    = 3
	defaultMaxLogAgeDays = 7
)

// DefaultConfig returns the default configuration values for vomnibar.
func DefaultConfig() *Config {
	return &Config{
		Vomnibar: VomnibarConfig{
			DefaultCompleter: defaultCompleter,
			MaxResults:       defaultMaxResults,
			HistoryScan:      defaultHistoryScan,
		},
		DefaultSearchEngine: "https://duckduckgo.com/?q=%s",
		SearchEngines: map[string]SearchEngine{
			"g": {
				URL:         "https://www.google.com/search?q=%s",
				Description: "Google",
			},
			"gh": {
				URL:         "https://github.com/search?q=%s",
				Description: "GitHub",
			},
			"go": {
				URL:         "https://pkg.go.dev/search?q=%s",
				Description: "Go packages",
			},
			"w": {
				URL:         "https://en.wikipedia.org/w/index.php?search=%s",
				Description: "Wikipedia",
			},
			"yt": {
				URL:         "https://www.youtube.com/results?search_query=%s",
				Description: "YouTube",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
			Compress:   true,
		},
	}
}
