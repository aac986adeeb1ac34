package reporter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

var (
	// ErrOutputWrite means the report could not be written
	ErrOutputWrite = errors.New("write report")
	// ErrOutputLocked means another run currently owns the report path
	ErrOutputLocked = errors.New("report is locked by another run")
)

// writeReport replaces path with data in one step while holding an exclusive
// lock on path+".lock". Readers see the previous report or the new one.
// The lock file stays in place so every run locks the same inode.
func writeReport(path string, data []byte) error {
	lockPath := path + ".lock"
	lock := flock.New(lockPath)

	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("%w: lock %s: %w", ErrOutputWrite, lockPath, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrOutputLocked, path)
	}
	defer func() { _ = lock.Unlock() }()

	if err := writeAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}
	return nil
}

// writeAtomic writes to a temp file in the same directory, syncs it and renames it over path
func writeAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	// best effort: persist the rename
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}
	return nil
}
