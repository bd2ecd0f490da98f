// Package bootstrap handles application initialization and lifecycle
// management for the supervisor registration service.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/config"
	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
	"github.com/iedaejin/capstones-supervisors-form/internal/registry"
	"github.com/iedaejin/capstones-supervisors-form/internal/store"
)

const version = "dev"

// Start initializes and starts the registration service.
func Start() error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg, version)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: Load the topic catalog. A missing or malformed catalog is
	// fatal: no submission can be validated without it.
	catalogs, err := SetupCatalog(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Catalog.Watch {
		go func() {
			if watchErr := catalogs.Watch(ctx); watchErr != nil && !errors.Is(watchErr, context.Canceled) {
				log.Error("Catalog watcher stopped", logger.Error(watchErr))
			}
		}()
	}

	// Phase 3: Open the record store. Absence is fine; the file is
	// created on the first accepted submission.
	records := store.New(cfg.Store.Path, log)

	// Phase 4: Setup event publisher (optional)
	publisher := SetupEventPublisher(cfg, log)

	// Phase 5: Build the pipeline and run the HTTP server
	pipeline := registry.New(records, catalogs, publisher, log)
	server := SetupHTTPServer(cfg, pipeline, catalogs, records, log)

	log.Info("Starting HTTP server",
		logger.String("host", cfg.Server.Host),
		logger.Int("port", cfg.Server.Port),
		logger.String("store", cfg.Store.Path),
	)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	if runErr := server.Run(addr); runErr != nil {
		log.Error("Server error", logger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Server exited")
	return nil
}

// SetupCatalog loads the topic catalog and wraps it in a provider.
func SetupCatalog(cfg *config.Config, log logger.Logger) (*catalog.Provider, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	if cat.Empty() {
		// Readable but contributing nothing: degraded, not fatal. The
		// form has no options to offer until the spreadsheet is fixed
		// and reloaded.
		log.Warn("Catalog loaded but contains no topics",
			logger.String("path", cfg.Catalog.Path),
		)
	} else {
		log.Info("Catalog loaded",
			logger.String("path", cfg.Catalog.Path),
			logger.Int("programs", len(cat.Programs())),
			logger.Int("topics", cat.TopicCount()),
		)
	}

	return catalog.NewProvider(cfg.Catalog.Path, cat, log), nil
}
