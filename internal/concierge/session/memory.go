package session

import (
	"context"
	"sync"
	"time"

	conciergeerrors "luxestay/internal/concierge/errors"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps encoded sessions in process. Values are stored encoded so
// callers never share a *Session between requests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	locks   *localLocks
	ttl     time.Duration
	now     func() time.Time
	stopCh  chan struct{}
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	store := &MemoryStore{
		entries: make(map[string]entry),
		locks:   newLocalLocks(),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go store.cleanup()

	return store
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || s.now().After(e.expiresAt) {
		return nil, conciergeerrors.ErrSessionNotFound
	}
	return decode(e.data)
}

func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	data, err := encode(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.ID] = entry{data: data, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.now().After(e.expiresAt) {
		return conciergeerrors.ErrSessionNotFound
	}
	delete(s.entries, id)
	return nil
}

// Lock is process-local, matching the reach of the store itself.
func (s *MemoryStore) Lock(ctx context.Context, id string) (func(), error) {
	return s.locks.Lock(ctx, id)
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *MemoryStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}

func (s *MemoryStore) Stop() {
	close(s.stopCh)
}
