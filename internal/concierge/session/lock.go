package session

import (
	"context"
	"sync"
)

// Locker grants one caller at a time exclusive use of a session. The lock is
// held across load, transition and save, and released by calling unlock.
type Locker interface {
	Lock(ctx context.Context, id string) (unlock func(), err error)
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// localLocks serializes work per session ID inside one process. Entries are
// dropped once no caller holds or waits on them.
type localLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

func newLocalLocks() *localLocks {
	return &localLocks{locks: make(map[string]*lockEntry)}
}

func (l *localLocks) Lock(_ context.Context, id string) (func(), error) {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &lockEntry{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}, nil
}

func (l *localLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
