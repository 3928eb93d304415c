package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// writeAtomic writes data next to path and renames it into place, so readers
// never observe a partially written file. The temp file is removed on failure.
func writeAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
				err = multierr.Append(err, rmErr)
			}
		}
	}()

	if _, err = f.Write(data); err != nil {
		return multierr.Append(fmt.Errorf("failed to write temp file: %w", err), f.Close())
	}
	if err = f.Sync(); err != nil {
		return multierr.Append(fmt.Errorf("failed to sync temp file: %w", err), f.Close())
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}
	return nil
}
