package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/iedaejin/capstones-supervisors-form/internal/logger"
)

// Provider holds the current catalog behind a read lock so a long-running
// registration campaign can pick up spreadsheet changes without a restart.
type Provider struct {
	path string
	log  logger.Logger

	mu      sync.RWMutex
	current *Catalog
}

// NewProvider creates a provider serving the given catalog, loaded from
// path.
func NewProvider(path string, initial *Catalog, log logger.Logger) *Provider {
	return &Provider{
		path:    path,
		log:     log,
		current: initial,
	}
}

// Get returns the current catalog.
func (p *Provider) Get() *Catalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reload re-reads the spreadsheet and swaps in the new catalog. On load
// failure the previous catalog stays in place and the error is returned.
func (p *Provider) Reload() error {
	cat, err := Load(p.path)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}

	p.mu.Lock()
	p.current = cat
	p.mu.Unlock()

	p.log.Info("Catalog reloaded",
		logger.String("path", p.path),
		logger.Int("programs", len(cat.Programs())),
		logger.Int("topics", cat.TopicCount()),
	)
	return nil
}

// Watch blocks until ctx is done, reloading the catalog whenever the
// spreadsheet is rewritten. The parent directory is watched rather than the
// file itself because most spreadsheet editors replace the file on save.
func (p *Provider) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(p.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(p.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if reloadErr := p.Reload(); reloadErr != nil {
				p.log.Warn("Catalog reload failed, keeping previous catalog",
					logger.String("path", p.path),
					logger.Error(reloadErr),
				)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.log.Error("Catalog watcher error", logger.Error(watchErr))
		}
	}
}
