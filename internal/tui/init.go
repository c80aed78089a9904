package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/reelview/internal/config"
	"github.com/javiermolinar/reelview/internal/db"
	"github.com/javiermolinar/reelview/internal/movie"
)

// OpenRepository opens the catalog store configured in cfg, seeding it with the built-in catalog.
func OpenRepository(cfg *config.Config) (movie.Repository, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if !cfg.InMemory() {
		dbDir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dbDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing catalog store: %w", err)
	}
	return repo, nil
}
