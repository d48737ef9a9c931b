package main

import (
	"fmt"
	"io"

	"github.com/glintui/glint/internal/catalog"
	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/logger"
	"github.com/glintui/glint/internal/themestore"
)

// appContext bundles everything the subcommands share.
type appContext struct {
	cfg      *config.Config
	registry *catalog.Registry
	store    *themestore.Store
	log      *logger.Logger

	logFile io.Closer
}

// newAppContext loads configuration and wires the registry, preference
// store, and logger. An empty configPath means the default location.
func newAppContext(configPath string) (*appContext, error) {
	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = path
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logOpts := logger.Options{Level: cfg.Log.Level}
	var logFile io.Closer
	if cfg.Log.File != "" {
		file, err := logger.FileWriter(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		logOpts.Writer = file
		logFile = file
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, err
	}

	registry, err := catalog.BuiltinRegistry(cfg)
	if err != nil {
		return nil, err
	}

	store, err := themestore.New()
	if err != nil {
		return nil, err
	}

	return &appContext{
		cfg:      cfg,
		registry: registry,
		store:    store,
		log:      log,
		logFile:  logFile,
	}, nil
}

// close releases the log file, if any.
func (a *appContext) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// theme resolves the active theme name: stored preference first, then the
// configured default.
func (a *appContext) theme() string {
	name, err := a.store.Load()
	if err != nil {
		a.log.Error(err, "loading theme preference")
	}
	if name == "" {
		name = a.cfg.Theme
	}
	return name
}
