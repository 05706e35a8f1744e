package config

import (
	"fmt"
	"strings"
)

var (
	knownCompleters = map[string]bool{"omni": true, "history": true}
	knownLogLevels  = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	knownLogFormats = map[string]bool{"console": true, "json": true}
)

const maxResultsLimit = 100

// validateConfig collects every problem into a single ErrInvalidConfig.
func validateConfig(config *Config) error {
	var validationErrors []string

	if !knownCompleters[config.Vomnibar.DefaultCompleter] {
		validationErrors = append(validationErrors, fmt.Sprintf("vomnibar.default_completer must be omni or history (got: %s)", config.Vomnibar.DefaultCompleter))
	}
	if config.Vomnibar.MaxResults < 1 || config.Vomnibar.MaxResults > maxResultsLimit {
		validationErrors = append(validationErrors, fmt.Sprintf("vomnibar.max_results must be between 1 and %d", maxResultsLimit))
	}
	if config.Vomnibar.HistoryScan < 0 {
		validationErrors = append(validationErrors, "vomnibar.history_scan must be non-negative")
	}

	if config.DefaultSearchEngine == "" {
		validationErrors = append(validationErrors, "default_search_engine cannot be empty")
	} else if !strings.Contains(config.DefaultSearchEngine, "%s") {
		validationErrors = append(validationErrors, "default_search_engine must contain %s placeholder for the search query")
	}

	for keyword, engine := range config.SearchEngines {
		if strings.ContainsAny(keyword, " \t\r\n") {
			validationErrors = append(validationErrors, fmt.Sprintf("search_engines.%s: keyword cannot contain whitespace", keyword))
		}
		if engine.URL == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("search_engines.%s.url cannot be empty", keyword))
		}
	}

	if !knownLogLevels[strings.ToLower(config.Logging.Level)] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	if !knownLogFormats[config.Logging.Format] {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be console or json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
