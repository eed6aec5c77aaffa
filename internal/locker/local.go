package locker

import (
	"context"
	"fmt"
	"sync"
)

// LocalLocker is an in-process [Locker] backed by one single-slot channel per
// key. Entries are dropped once no caller holds or waits on them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	slot chan struct{}
	refs int
}

// NewLocalLocker constructs an empty [LocalLocker].
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

// Lock implements [Locker].
func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	kl := l.acquireRef(key)

	select {
	case kl.slot <- struct{}{}:
	case <-ctx.Done():
		l.releaseRef(key, kl)
		return nil, fmt.Errorf("%w: %w", ErrLockNotAcquired, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-kl.slot
			l.releaseRef(key, kl)
		})
	}, nil
}

func (l *LocalLocker) acquireRef(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{slot: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++

	return kl
}

func (l *LocalLocker) releaseRef(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
