package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"cdinventory/internal/fileutil"
	"cdinventory/internal/inventory"
	"cdinventory/internal/logging"
)

// File keeps the snapshot as a JSON array of records.
type File struct {
	path   string
	logger *slog.Logger
}

// NewFile returns a gateway backed by the JSON file at path. The file is not
// touched until Load or Save.
func NewFile(path string, logger *slog.Logger) *File {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &File{path: path, logger: logger}
}

// Location returns the snapshot file path.
func (f *File) Location() string {
	return f.path
}

// Load reads the whole snapshot. An empty file is an empty inventory.
func (f *File) Load(ctx context.Context) (inventory.Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, f.path)
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	inv, err := decodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	f.logger.Debug("loaded inventory snapshot",
		logging.Int(logging.FieldRecordCount, inv.Len()),
		logging.String(logging.FieldLocation, f.path))
	return inv, nil
}

// Save rewrites the whole snapshot via a temp file and rename.
func (f *File) Save(ctx context.Context, inv inventory.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inv == nil {
		inv = inventory.Inventory{}
	}

	data, err := encodeSnapshot(inv)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := fileutil.WriteAtomic(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	f.logger.Debug("saved inventory snapshot",
		logging.Int(logging.FieldRecordCount, inv.Len()),
		logging.String(logging.FieldLocation, f.path))
	return nil
}

// Close is a no-op; the file is closed after every call.
func (f *File) Close() error {
	return nil
}
