package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// PresenceStore is a map-backed repository.Presence
type PresenceStore struct {
	mu      sync.Mutex
	viewers map[string]time.Time
}

// NewPresenceStore creates an empty store
func NewPresenceStore() *PresenceStore {
	return &PresenceStore{viewers: make(map[string]time.Time)}
}

func (s *PresenceStore) InsertViewer(_ context.Context, id string, seenAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewers[id] = seenAt
	return nil
}

func (s *PresenceStore) TouchViewer(_ context.Context, id string, seenAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.viewers[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrViewerNotFound, id)
	}
	s.viewers[id] = seenAt
	return nil
}

func (s *PresenceStore) DeleteViewer(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.viewers, id)
	return nil
}

func (s *PresenceStore) CountViewersSince(_ context.Context, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, seen := range s.viewers {
		if !seen.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *PresenceStore) DeleteViewersBefore(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, seen := range s.viewers {
		if seen.Before(before) {
			delete(s.viewers, id)
			n++
		}
	}
	return n, nil
}
