// Package cli wires the vomnibar dependencies for the command-line entry points.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/vomnibar/internal/application/usecase"
	"github.com/bnema/vomnibar/internal/cli/styles"
	"github.com/bnema/vomnibar/internal/config"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository"
	"github.com/bnema/vomnibar/internal/infrastructure/completion"
	"github.com/bnema/vomnibar/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/vomnibar/internal/logging"
)

// LogTarget selects where an App logs.
type LogTarget int

const (
	// LogToStderr suits commands whose stdout is data.
	LogToStderr LogTarget = iota
	// LogToFile suits the terminal UI, which owns the whole terminal.
	LogToFile
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme

	Engines  *entity.SearchEngineRegistry
	Provider *completion.Provider
	History  repository.HistoryRepository

	// Use cases
	SearchHistoryUC *usecase.SearchHistoryUseCase

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the dependency graph. The
// database is opened on first use.
func NewApp(target LogTarget) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCleanup, err := newLogger(cfg, target)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	historyRepo := sqlite.NewLazyHistoryRepository(db)
	engines := entity.NewSearchEngineRegistry(cfg.Engines()...)

	provider := completion.NewProvider(engines, historyRepo, completion.Config{
		MaxResults:          cfg.Vomnibar.MaxResults,
		HistoryScan:         cfg.Vomnibar.HistoryScan,
		DefaultSearchEngine: cfg.DefaultSearchEngine,
	})

	app := &App{
		Config:          cfg,
		ConfigManager:   mgr,
		Theme:           styles.NewTheme(),
		Engines:         engines,
		Provider:        provider,
		History:         historyRepo,
		SearchHistoryUC: usecase.NewSearchHistoryUseCase(historyRepo),
		db:              db,
		ctx:             ctx,
		logCleanup:      logCleanup,
	}

	logger.Debug().
		Str("config", mgr.ConfigFile()).
		Str("db_path", cfg.Database.Path).
		Int("search_engines", engines.Len()).
		Msg("app initialized")
	return app, nil
}

func newLogger(cfg *config.Config, target LogTarget) (logger zerolog.Logger, cleanup func(), err error) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	if target != LogToFile {
		return logging.New(logCfg), func() {}, nil
	}

	logDir := cfg.Logging.LogDir
	if logDir == "" {
		if logDir, err = config.GetLogDir(); err != nil {
			return logger, nil, fmt.Errorf("resolve log dir: %w", err)
		}
	}

	logger, cleanup, err = logging.NewWithFile(logCfg, logging.FileConfig{
		Dir:        logDir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		// A missing log file must not keep the launcher from starting.
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		return zerolog.Nop(), func() {}, nil
	}
	return logger, cleanup, nil
}

// WatchConfig applies config file edits to the running app: search engines
// and the default search engine are swapped in place.
func (a *App) WatchConfig() {
	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		a.Engines.Set(cfg.Engines())
		a.Provider.SetDefaultSearchEngine(cfg.DefaultSearchEngine)
	})
	a.ConfigManager.Watch(a.ctx)
}

// ActivateOptions returns the activation defaults from the config.
func (a *App) ActivateOptions() entity.ActivateOptions {
	opts := entity.DefaultActivateOptions()
	opts.Completer = a.Config.Vomnibar.DefaultCompleter
	opts.SelectFirst = a.Config.Vomnibar.SelectFirst
	opts.NewTab = a.Config.Vomnibar.ForceNewTab
	return opts
}

// Close releases all resources.
func (a *App) Close() error {
	err := a.db.Close()
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
