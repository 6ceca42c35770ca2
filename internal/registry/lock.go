package registry

import (
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

const lockFileName = ".tfoods.lock"

// ErrLocked means another sync holds the registry root.
var ErrLocked = errors.New("registry is locked by another sync")

// Lock holds an exclusive flock on a registry root for the duration of a
// sync, so two runs cannot race on the same node files.
type Lock struct {
	fl *flock.Flock
}

// AcquireLock takes the registry lock without blocking. It fails with
// ErrLocked when another process holds it.
func AcquireLock(registryRoot string) (*Lock, error) {
	if err := os.MkdirAll(registryRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create registry root: %w", err)
	}
	fl := flock.New(join(registryRoot, lockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire registry lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &Lock{fl: fl}, nil
}

// Release gives the lock back. Safe to call on a nil lock.
func (l *Lock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
