package locker

import (
	"context"
	"errors"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/locker_mock.go -package=mock

// ErrLockNotAcquired is returned when the lock could not be taken before the
// context was done.
var ErrLockNotAcquired = errors.New("lock not acquired")

// Locker serializes work per key.
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned release
	// function is safe to call more than once.
	Lock(ctx context.Context, key string) (release func(), err error)
}
