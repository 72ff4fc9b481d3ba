package service

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// exchangeLocks hands out one exclusive lock per exchange id. Entries are
// reference counted and dropped once no caller holds or waits on them.
type exchangeLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	sem  *semaphore.Weighted
	refs int
}

// acquire blocks until the exchange lock is held or ctx is done. The returned
// release func must be called exactly once.
func (l *exchangeLocks) acquire(ctx context.Context, exchangeID string) (func(), error) {
	l.mu.Lock()
	if l.entries == nil {
		l.entries = make(map[string]*lockEntry)
	}
	e, ok := l.entries[exchangeID]
	if !ok {
		e = &lockEntry{sem: semaphore.NewWeighted(1)}
		l.entries[exchangeID] = e
	}
	e.refs++
	l.mu.Unlock()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		l.drop(exchangeID, e)
		return nil, err
	}

	return func() {
		e.sem.Release(1)
		l.drop(exchangeID, e)
	}, nil
}

func (l *exchangeLocks) drop(exchangeID string, e *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.entries, exchangeID)
	}
}

// size reports how many exchanges currently have a lock entry.
func (l *exchangeLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
