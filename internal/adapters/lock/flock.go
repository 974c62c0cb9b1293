// Package lock provides the cross-process cache lock.
package lock

import (
	"os"

	"go.trai.ch/glhost/internal/core/domain"
	"go.trai.ch/glhost/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

var _ ports.Locker = (*Flock)(nil)

// Flock implements ports.Locker with a blocking exclusive flock. The
// zero-byte lock file is harmless if orphaned: the kernel releases the lock
// when the descriptor closes, including on process crash, so a dead holder
// never deadlocks the next run.
type Flock struct {
	logger ports.Logger
}

// NewFlock creates a new Flock locker.
func NewFlock(logger ports.Logger) *Flock {
	return &Flock{logger: logger}
}

// Acquire opens (or creates) the lock file and blocks until the exclusive
// lock is held.
func (f *Flock) Acquire(path string) (ports.Lease, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600) //nolint:gosec // Lock file path is derived from the cache root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", path)
	}

	f.logger.Debug("acquiring cache lock at " + path)
	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		_ = file.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFailed.Error()), "path", path)
	}
	f.logger.Debug("cache lock acquired")

	return &lease{file: file, logger: f.logger}, nil
}

type lease struct {
	file   *os.File
	logger ports.Logger
}

// Release unlocks and closes the lock file. Safe to call more than once.
func (l *lease) Release() {
	if l.file == nil {
		return
	}
	// LOCK_UN before Close for explicitness; Close also releases the flock.
	if err := unix.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		l.logger.Debug("flock unlock failed: " + err.Error())
	}
	if err := l.file.Close(); err != nil {
		l.logger.Debug("lock file close failed: " + err.Error())
	}
	l.file = nil
	l.logger.Debug("cache lock released")
}
