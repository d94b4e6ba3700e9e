package database

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("database is locked by another bulletin process")

const lockRetryInterval = 50 * time.Millisecond

// Lock takes an exclusive cross-process lock next to the database file for
// operations that must not interleave, such as seeding. The returned func
// releases it. It gives up with ErrLocked when ctx is done first.
func Lock(ctx context.Context, dbPath string) (func() error, error) {
	if dbPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}
	if dbPath == ":memory:" {
		return func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	fileLock := flock.New(dbPath + ".lock")
	locked, err := fileLock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to lock database: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	return fileLock.Unlock, nil
}
