package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/recipebox/internal/config"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// options holds the persistent flags.
type options struct {
	configPath string
	verbose    bool
	quiet      bool
	logFile    string
}

// app is the wiring shared by every subcommand.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	store   *storage.Store
	source  domain.RecipeSource
	closers []io.Closer
}

func newApp(opts *options) (*app, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &app{cfg: cfg}

	logLevel := cfg.GetLogLevel()
	if opts.verbose {
		logLevel = logger.LevelVerbose
	}
	if opts.quiet {
		logLevel = logger.LevelOff
	}

	// Logs go to a file by default so the terminal stays clean.
	logPath := cfg.Logging.File
	if opts.logFile != "" {
		logPath = opts.logFile
	}
	var logOut io.Writer = os.Stderr
	if logPath != "" && logPath != "stderr" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", logPath, err)
		} else {
			logOut = f
			a.closers = append(a.closers, f)
		}
	}
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)
	a.log = logger.New(logLevel, logOut)

	backend, err := storage.Open(cfg.Store.Backend, cfg.Store.Dir, a.log.Named("store"))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Backend, err)
	}
	if c, ok := backend.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}
	a.store = storage.NewStore(backend, a.log.Named("store"))

	if cfg.RecipesFile != "" {
		src, err := recipe.NewYAMLSource(cfg.RecipesFile, a.log.Named("recipes"))
		if err != nil {
			a.Close()
			return nil, err
		}
		a.source = src
	} else {
		a.source = recipe.NewMemorySource(a.log.Named("recipes"))
	}

	a.log.Debug("config: backend=%s dir=%s recipes=%q", cfg.Store.Backend, cfg.Store.Dir, cfg.RecipesFile)
	return a, nil
}

// engine builds and initialises the controller.
func (a *app) engine(ctx context.Context, opts ...engine.Option) (*engine.Engine, error) {
	base := []engine.Option{
		engine.WithPageSize(a.cfg.PageSize),
		engine.WithMaxServings(a.cfg.MaxServings),
		engine.WithSearchDelay(a.cfg.GetSearchDelay()),
	}
	eng := engine.New(a.source, a.store, a.log.Named("engine"), append(base, opts...)...)
	if err := eng.Init(ctx); err != nil {
		return nil, err
	}
	return eng, nil
}

// Close releases the store and log file, newest first.
func (a *app) Close() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
