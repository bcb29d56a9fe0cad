package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yumbiru/yumvalues/internal/domain"
)

// TradeStore is a map-backed repository.Trade
type TradeStore struct {
	mu     sync.Mutex
	trades map[string]domain.TradeRequest
	now    func() time.Time
}

// NewTradeStore creates an empty store
func NewTradeStore() *TradeStore {
	return &TradeStore{trades: make(map[string]domain.TradeRequest), now: time.Now}
}

func (s *TradeStore) InsertTrade(_ context.Context, req *domain.TradeRequest) (*domain.TradeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *req
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now()
	}
	stored.Status = domain.TradeStatusPending
	s.trades[stored.ID] = stored
	return &stored, nil
}

func (s *TradeStore) GetTrade(_ context.Context, id string) (*domain.TradeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.trades[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTradeNotFound, id)
	}
	return &req, nil
}

func (s *TradeStore) TransitionTrade(_ context.Context, id string, to domain.TradeStatus) (*domain.TradeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.trades[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTradeNotFound, id)
	}
	if req.Status != domain.TradeStatusPending {
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrTradeNotPending, id, req.Status)
	}
	req.Status = to
	s.trades[id] = req
	return &req, nil
}

func (s *TradeStore) ListTradesByStatus(_ context.Context, status domain.TradeStatus) ([]domain.TradeRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.TradeRequest, 0)
	for _, req := range s.trades {
		if req.Status == status {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
