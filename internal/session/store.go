// Package session holds per-session application state. State changes only
// through Dispatch, which applies one Action at a time per session; readers
// get render-ready Views.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yumbiru/yumvalues/internal/concurrency"
	"github.com/yumbiru/yumvalues/internal/domain"
	"github.com/yumbiru/yumvalues/internal/inventory"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/metrics"
	"github.com/yumbiru/yumvalues/internal/repository"
	"github.com/yumbiru/yumvalues/internal/trade"
)

// Catalog is the read side of the item catalog a session needs
type Catalog interface {
	Lookup(id string) (domain.Item, bool)
	Name(id string) string
	Filter(filter domain.Filter, search string) []domain.Item
}

// Config sizes the session registry
type Config struct {
	CacheSize int
	TTL       time.Duration
}

// Store owns every live session
type Store struct {
	catalog  Catalog
	trades   trade.Service
	blobs    repository.BlobStore
	locks    *concurrency.LockManager
	sessions *expirable.LRU[string, *State]
	now      func() time.Time
}

// NewStore creates a session store. Evicted sessions lose their desk and
// selection; the ledger survives in blobs and is reloaded on resume.
func NewStore(cfg Config, catalog Catalog, trades trade.Service, blobs repository.BlobStore) *Store {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	s := &Store{
		catalog: catalog,
		trades:  trades,
		blobs:   blobs,
		locks:   concurrency.NewLockManager(),
		now:     time.Now,
	}
	// Close and TTL expiry land here too.
	onEvict := func(id string, _ *State) {
		s.locks.Delete(id)
		metrics.ActiveSessions.Dec()
		logger.FromContext(context.Background()).Debug(LogMsgSessionEvicted, "session_id", id)
	}
	s.sessions = expirable.NewLRU[string, *State](cfg.CacheSize, onEvict, cfg.TTL)
	return s
}

// Open returns the session sessionID, creating it for identity when it is
// not live. An empty sessionID creates a fresh session. A live session can
// only be resumed by the identity that opened it.
func (s *Store) Open(ctx context.Context, sessionID, identity string) (*View, error) {
	log := logger.FromContext(ctx)

	if identity == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgIdentityRequired)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	var view *View
	err := s.locks.WithLock(sessionID, func() error {
		st, ok := s.sessions.Get(sessionID)
		if ok {
			if st.Identity != identity {
				log.Warn(LogMsgSessionClaimed, "session_id", sessionID, "identity", identity)
				return fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgIdentityMismatch)
			}
			log.Debug(LogMsgSessionResumed, "session_id", sessionID)
		} else {
			now := s.now()
			st = &State{
				ID:        sessionID,
				Identity:  identity,
				CreatedAt: now,
				UpdatedAt: now,
				Filter:    domain.FilterAll,
				Ledger:    inventory.Load(ctx, s.blobs, inventory.StorageKey(sessionID)),
			}
			s.sessions.Add(sessionID, st)
			metrics.ActiveSessions.Inc()
			log.Info(LogMsgSessionCreated, "session_id", sessionID, "identity", identity)
		}
		view = s.render(ctx, st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// View renders the current state of a session
func (s *Store) View(ctx context.Context, sessionID string) (*View, error) {
	var view *View
	err := s.withSession(sessionID, func(st *State) error {
		view = s.render(ctx, st)
		return nil
	})
	return view, err
}

// Dispatch applies one action to a session under its lock and returns the
// resulting view. A failed action leaves the session unchanged.
func (s *Store) Dispatch(ctx context.Context, sessionID string, action Action) (*View, error) {
	log := logger.FromContext(ctx)

	var view *View
	err := s.withSession(sessionID, func(st *State) error {
		if err := s.apply(ctx, st, action); err != nil {
			log.Warn(LogMsgActionFailed, "session_id", sessionID, "action", action.Type, "error", err)
			return err
		}
		st.UpdatedAt = s.now()
		log.Debug(LogMsgActionApplied, "session_id", sessionID, "action", action.Type)
		view = s.render(ctx, st)
		return nil
	})
	return view, err
}

// Close drops a live session. Its ledger stays in the blob store.
func (s *Store) Close(sessionID string) bool {
	return s.sessions.Remove(sessionID)
}

// Len returns the number of live sessions
func (s *Store) Len() int {
	return s.sessions.Len()
}

func (s *Store) withSession(sessionID string, fn func(*State) error) error {
	if !s.sessions.Contains(sessionID) {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return s.locks.WithLock(sessionID, func() error {
		st, ok := s.sessions.Get(sessionID)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
		}
		return fn(st)
	})
}
