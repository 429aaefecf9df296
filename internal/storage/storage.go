package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cdinventory/internal/config"
	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
)

// ErrNotFound reports that no snapshot exists at the gateway's location.
var ErrNotFound = errors.New("inventory snapshot not found")

// Gateway loads and saves complete inventory snapshots.
type Gateway interface {
	// Load returns every stored record in stored order. A missing snapshot
	// yields an error matching ErrNotFound.
	Load(ctx context.Context) (inventory.Inventory, error)
	// Save replaces the stored snapshot with inv.
	Save(ctx context.Context, inv inventory.Inventory) error
	// Location describes where the snapshot lives.
	Location() string
	// Close releases backend resources.
	Close() error
}

// Open constructs the backend selected by cfg.
func Open(cfg *config.Config, logger *slog.Logger) (Gateway, error) {
	if cfg == nil {
		return nil, errors.New("storage requires config")
	}
	logger = logging.NewComponentLogger(logger, "storage")

	switch cfg.Storage.Backend {
	case config.BackendFile, "":
		return NewFile(cfg.Storage.Path, logger), nil
	case config.BackendSQLite:
		return NewSQLite(cfg.Storage.Path, logger), nil
	default:
		return nil, fmt.Errorf("storage backend %q is not supported", cfg.Storage.Backend)
	}
}
